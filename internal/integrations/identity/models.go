package identity

// Роли пользователей identity-провайдера
const (
	RoleClient = "client"
	RoleBarber = "barber"
)

// User аутентифицированный пользователь из identity-провайдера.
// ID — непрозрачная строка; сервис использует её как идентификатор
// владельца записи без каких-либо предположений о формате.
type User struct {
	ID          string `json:"id"`
	Role        string `json:"role"`
	DisplayName string `json:"display_name"`

	// BarberID заполнен только для пользователей с ролью barber:
	// связывает учётную запись с барбером из справочника
	BarberID *int64 `json:"barber_id,omitempty"`
}

// IsBarber возвращает true для учётной записи барбера
func (u *User) IsBarber() bool {
	return u.Role == RoleBarber && u.BarberID != nil
}

// ErrorResponse модель ошибки от identity-провайдера
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
