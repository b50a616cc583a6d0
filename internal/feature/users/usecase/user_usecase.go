package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"account_backend/internal/feature/users/domain/entity"
)

// dummyPasswordHash はユーザーが存在しない場合のタイミング攻撃緩和用ダミーハッシュです。
// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証します。
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// UserRepository はユーザーエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type UserRepository interface {
	// Create は新しいユーザーをストレージに永続化します。
	// 同じメールアドレスのユーザーが既に存在する場合、ErrEmailAlreadyExistsを返します。
	Create(ctx context.Context, user *entity.User) error

	// FindAll は全ユーザーを登録順（ID昇順）で取得します。Passwordフィールドは射影されません。
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID は指定されたIDに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail は指定されたメールアドレスに一致するユーザーを取得します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update は既存ユーザーの全フィールドを保存します。
	// メールアドレスが他ユーザーと衝突する場合、ErrEmailAlreadyExistsを返します。
	Update(ctx context.Context, user *entity.User) error

	// Delete は指定されたIDのユーザーを削除します。
	// ユーザーが存在しない場合、ErrUserNotFoundを返します。
	Delete(ctx context.Context, id uint) error
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたユーザーの署名済みJWTトークンを生成します。
	GenerateToken(userID uint, email string) (string, error)
}

// UpdateInput はユーザー更新の部分入力を表します。
// nilのフィールドはリクエストに含まれなかったことを意味し、変更されません。
type UpdateInput struct {
	Name     *string
	Email    *string
	Password *string
}

// AuthToken はログイン成功時に発行されるベアラートークンを表します。
type AuthToken struct {
	AccessToken string
	TokenType   string
	// ExpiresIn はトークンの有効期間（秒）です。
	ExpiresIn int
}

// userUsecase はユーザー管理と認証のビジネスロジックを実装します。
type userUsecase struct {
	users    UserRepository
	tokens   JWTGenerator
	tokenTTL time.Duration
}

// NewUserUsecase はuserUsecaseの新しいインスタンスを生成します。
func NewUserUsecase(users UserRepository, tokens JWTGenerator, tokenTTL time.Duration) *userUsecase {
	return &userUsecase{
		users:    users,
		tokens:   tokens,
		tokenTTL: tokenTTL,
	}
}

// Create はハッシュ化されたパスワードで新規ユーザーを登録します。
// メールアドレスの一意性はストレージのユニーク制約で保証され、
// 衝突時はErrEmailAlreadyExistsが返されます。
func (u *userUsecase) Create(ctx context.Context, name, email, password string) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &entity.User{Name: name, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List は全ユーザーを登録順で返します。
func (u *userUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Get はIDでユーザーを取得します。
func (u *userUsecase) Get(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// Update は既存ユーザーのname/email/passwordを部分更新します。
// パスワードが含まれる場合は再ハッシュし、メールアドレスが変更される場合の
// 一意性はストレージのユニーク制約で再検証されます。
func (u *userUsecase) Update(ctx context.Context, id uint, in UpdateInput) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete はIDでユーザーを削除します。
func (u *userUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// Login はユーザーを認証し、成功時に署名済みベアラートークンを返します。
// タイミング攻撃を防止するため、ユーザーが存在しない場合でもbcrypt比較を実行します。
func (u *userUsecase) Login(ctx context.Context, email, password string) (*AuthToken, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyPasswordHash
	if err == nil {
		passwordHash = user.Password
	}

	// タイミング攻撃防止のため、常にパスワードを検証
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	// ユーザー未検出またはパスワード不一致の場合、汎用エラーを返す
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &AuthToken{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(u.tokenTTL.Seconds()),
	}, nil
}
