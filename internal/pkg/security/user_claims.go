package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims Token 中携带的业务身份信息。签发由外部账号系统负责，
// 本服务只做校验
type UserClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
