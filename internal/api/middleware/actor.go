package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/m04kA/SMC-HotelOps/internal/domain"
)

// Заголовки с контекстом пользователя, проставляемые шлюзом
const (
	HeaderUserID    = "X-User-ID"
	HeaderUserRoles = "X-User-Roles"
	HeaderHotelID   = "X-Hotel-ID"
)

var (
	// ErrMissingUser отсутствует X-User-ID
	ErrMissingUser = errors.New("middleware: missing user id header")
	// ErrInvalidHotelID X-Hotel-ID не является положительным числом
	ErrInvalidHotelID = errors.New("middleware: invalid hotel id header")
	// ErrUnknownRole X-User-Roles содержит неизвестную роль
	ErrUnknownRole = errors.New("middleware: unknown role in roles header")
)

var knownRoles = map[domain.Role]struct{}{
	domain.RoleAdmin:        {},
	domain.RoleReceptionist: {},
	domain.RoleHotelManager: {},
	domain.RoleGuest:        {},
}

// ActorFromRequest собирает контекст пользователя из заголовков.
// Роли перечисляются через запятую и сравниваются с учётом регистра
func ActorFromRequest(r *http.Request) (domain.Actor, error) {
	userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
	if userID == "" {
		return domain.Actor{}, ErrMissingUser
	}

	actor := domain.Actor{UserID: userID}

	for _, raw := range strings.Split(r.Header.Get(HeaderUserRoles), ",") {
		role := strings.TrimSpace(raw)
		if role == "" {
			continue
		}
		if _, ok := knownRoles[domain.Role(role)]; !ok {
			return domain.Actor{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
		}
		actor.Roles = append(actor.Roles, domain.Role(role))
	}

	if raw := strings.TrimSpace(r.Header.Get(HeaderHotelID)); raw != "" {
		hotelID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || hotelID <= 0 {
			return domain.Actor{}, ErrInvalidHotelID
		}
		actor.HotelID = &hotelID
	}

	return actor, nil
}
