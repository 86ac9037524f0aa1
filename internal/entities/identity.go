package entities

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleUser    Role = "user_cli"
	RoleScanner Role = "scanner"
)

// Identity - проверенная личность вызывающего, полученная из bearer токена.
type Identity struct {
	OwnerID string
	Role    Role
}

// IsOperator сообщает, может ли личность работать с чужими заказами на точке выдачи.
func (i Identity) IsOperator() bool {
	return i.Role == RoleAdmin || i.Role == RoleScanner
}

func (i Identity) CanAccess(o Order) bool {
	return i.OwnerID == o.OwnerID || i.IsOperator()
}
