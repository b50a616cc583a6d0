// Package dto はusersフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import "account_backend/internal/platform/validation"

// CreateUserReq は POST /api/users エンドポイントのリクエストボディを表します。
// フィールドはポインタで受け取り、キー欠落と空文字列を区別します。
type CreateUserReq struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Validate は宣言されたフィールド順（name, email, password）でルールを検証し、
// 最初に違反したルールのエラーのみを返します。
func (r CreateUserReq) Validate() error {
	if err := validation.Required("name", r.Name); err != nil {
		return err
	}
	if err := validation.NotEmpty("name", *r.Name); err != nil {
		return err
	}
	if err := validation.MaxLen("name", *r.Name, 255); err != nil {
		return err
	}
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
	if err := validation.NotEmpty("password", *r.Password); err != nil {
		return err
	}
	return validation.MinLen("password", *r.Password, 6)
}
