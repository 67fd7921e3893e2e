package model

import "time"

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleBanker   Role = "Banker"
	RoleCustomer Role = "Customer"
	RoleAuditor  Role = "Auditor"
)

type User struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
