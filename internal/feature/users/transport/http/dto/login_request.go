package dto

import "account_backend/internal/platform/validation"

// LoginReq は POST /api/login エンドポイントのリクエストボディを表します。
type LoginReq struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate はemail, passwordの順でルールを検証し、最初のエラーのみを返します。
// パスワードは存在チェックのみで長さは検証しません（登録時のみの制約）。
func (r LoginReq) Validate() error {
	if err := validation.Required("email", r.Email); err != nil {
		return err
	}
	if err := validation.NotEmpty("email", *r.Email); err != nil {
		return err
	}
	if err := validation.Email("email", *r.Email); err != nil {
		return err
	}
	if err := validation.Required("password", r.Password); err != nil {
		return err
	}
	return validation.NotEmpty("password", *r.Password)
}
