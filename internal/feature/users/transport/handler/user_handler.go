// Package handler はusersフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"account_backend/internal/feature/users/domain/entity"
	"account_backend/internal/feature/users/transport/http/dto"
	"account_backend/internal/feature/users/usecase"
)

// UserUsecase はユーザー操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type UserUsecase interface {
	// Create は新規ユーザーを登録し、作成されたユーザーを返します。
	Create(ctx context.Context, name, email, password string) (*entity.User, error)
	// List は全ユーザーを登録順で返します。
	List(ctx context.Context) ([]entity.User, error)
	// Get はIDでユーザーを取得します。
	Get(ctx context.Context, id uint) (*entity.User, error)
	// Update はユーザーを部分更新し、更新後のユーザーを返します。
	Update(ctx context.Context, id uint, in usecase.UpdateInput) (*entity.User, error)
	// Delete はIDでユーザーを削除します。
	Delete(ctx context.Context, id uint) error
	// Login はユーザーを認証し、成功時にベアラートークンを返します。
	Login(ctx context.Context, email, password string) (*usecase.AuthToken, error)
}

// UserHandler はユーザー操作のHTTPリクエストを処理します。
// UserUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type UserHandler struct {
	users UserUsecase
}

// NewUserHandler はUserHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からUserUsecaseを注入します。
func NewUserHandler(users UserUsecase) *UserHandler {
	return &UserHandler{users: users}
}

// respondError はユースケースのエラーをHTTPステータスと共通エンベロープに変換します。
// 予期しないエラーの詳細はログにのみ出力し、クライアントには公開しません。
func (h *UserHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.Failure("User not found"))
	case errors.Is(err, usecase.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.Failure("Email already in use"))
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, dto.Failure("Invalid credentials"))
	default:
		slog.Error("unexpected error", "error", err, "path", c.FullPath(), "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, dto.Failure("Database error"))
	}
}

// parseID は:idパスパラメータをuintに変換します。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid user id"))
		return 0, false
	}
	return uint(id), true
}

// Create はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをCreateUserReqにバインド
// - バリデーションエラー時は400を返却
// - メール重複時は409を返却
// - 成功時は201と作成ユーザー（パスワードなし）を返却
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("create user validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	user, err := h.users.Create(c.Request.Context(), *req.Name, *req.Email, *req.Password)
	if err != nil {
		slog.Warn("create user failed", "error", err, "remote_addr", c.ClientIP())
		h.respondError(c, err)
		return
	}
	slog.Info("user created", "id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.Success(dto.NewUserItem(*user)))
}

// List はユーザー一覧取得APIエンドポイントを処理します。
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.NewUserList(users)))
}

// Get はユーザー取得APIエンドポイントを処理します。
// 存在しないIDの場合は404を返却します。
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.NewUserItem(*user)))
}

// Update はユーザー更新APIエンドポイントを処理します。
// name/email/passwordはすべて任意で、含まれたフィールドのみ検証・更新されます。
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("update user validation failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	user, err := h.users.Update(c.Request.Context(), id, usecase.UpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		slog.Warn("update user failed", "error", err, "id", id, "remote_addr", c.ClientIP())
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Success(dto.NewUserItem(*user)))
}

// Delete はユーザー削除APIエンドポイントを処理します。
// 成功時は204（ボディなし）を返却します。
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err)
		return
	}
	slog.Info("user deleted", "id", id, "remote_addr", c.ClientIP())
	c.Status(http.StatusNoContent)
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - バリデーションエラー時は400を返却
// - 認証失敗時は401を返却（ユーザー列挙攻撃を防止するため詳細は公開しない）
// - 認証成功時はアクセストークン付きで200を返却
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Failure("Invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.Failure(err.Error()))
		return
	}
	token, err := h.users.Login(c.Request.Context(), *req.Email, *req.Password)
	if err != nil {
		slog.Warn("login failed", "error", err, "email", *req.Email, "remote_addr", c.ClientIP())
		h.respondError(c, err)
		return
	}
	slog.Info("user login successful", "email", *req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.Success(dto.TokenData{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	}))
}
