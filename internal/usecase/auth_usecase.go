package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// セッショントークンの有効期限
const sessionTokenTTL = 12 * time.Hour

// AuthUsecase はログイン＝セッション生成、ログアウト＝セッション破棄。
// 資格情報の検証はリモートに任せる。パスワードはここには保存しない。
type AuthUsecase struct {
	auth      repo.AuthAPI
	sessions  repo.SessionStore
	snapshots repo.CartSnapshotStore

	jwtSecret []byte
}

func NewAuthUsecase(
	auth repo.AuthAPI,
	sessions repo.SessionStore,
	snapshots repo.CartSnapshotStore,
	jwtSecret []byte,
) *AuthUsecase {
	return &AuthUsecase{
		auth:      auth,
		sessions:  sessions,
		snapshots: snapshots,
		jwtSecret: jwtSecret,
	}
}

type LoginInput struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginOutput struct {
	User      model.User `json:"user"`
	Token     string     `json:"token"`
	ExpiresIn int64      `json:"expiresIn"`
}

// ログイン。セッションを作り、前回のカートスナップショットを復元する。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if in.Email == "" || in.Senha == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}

	user, err := u.auth.Login(ctx, in.Email, in.Senha)
	if err != nil {
		//リモートに拒否された鑑別はしない。全部401
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	//スナップショット復元。壊れていれば空で始まる。
	//読めなくてもログインは通す
	lines, err := u.snapshots.Load(ctx, user.ID)
	if err != nil {
		lines = []model.CartLine{}
	}

	now := time.Now()
	sess := model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Nome,
		UserType:  user.Tipo,
		Cart:      lines,
		CreatedAt: now,
	}

	if err := u.sessions.Create(ctx, sess); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	token, expiresAt, err := u.issueToken(sess, now)
	if err != nil {
		u.sessions.Delete(ctx, sess.ID)
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		User:      user,
		Token:     token,
		ExpiresIn: int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

type RegisterInput struct {
	Nome     string `json:"nome"`
	Email    string `json:"email"`
	Telefone string `json:"telefone"`
	Senha    string `json:"senha"`
	Tipo     string `json:"tipo"`
}

// 新規登録。アカウント作成後はログインと同じ流れでセッションを作る。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (LoginOutput, error) {
	//入力チェック
	if in.Nome == "" || in.Email == "" || in.Telefone == "" || in.Senha == "" {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "validation error")
	}
	if len(in.Senha) < 6 {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "senha too short")
	}

	tipo := model.UserType(in.Tipo)
	if tipo != model.UserTypeClient && tipo != model.UserTypeRestaurant {
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "invalid tipo")
	}

	user, err := u.auth.Register(ctx, repo.RegisterInput{
		Nome:     in.Nome,
		Email:    in.Email,
		Telefone: in.Telefone,
		Senha:    in.Senha,
		Tipo:     tipo,
	})
	if err != nil {
		//メール重複などもここに落ちる
		if errors.Is(err, repo.ErrNotFound) {
			return LoginOutput{}, mapAPIError(err)
		}
		return LoginOutput{}, NewHTTPError(http.StatusBadRequest, "registration failed")
	}

	now := time.Now()
	sess := model.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserName:  user.Nome,
		UserType:  user.Tipo,
		Cart:      []model.CartLine{},
		CreatedAt: now,
	}

	if err := u.sessions.Create(ctx, sess); err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	token, expiresAt, err := u.issueToken(sess, now)
	if err != nil {
		u.sessions.Delete(ctx, sess.ID)
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		User:      user,
		Token:     token,
		ExpiresIn: int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// ログアウト。セッションは即時失効、スナップショットは残す
// （次回ログインでカートが戻る）。
func (u *AuthUsecase) Logout(ctx context.Context, sessionID string) {
	u.sessions.Delete(ctx, sessionID)
}

func (u *AuthUsecase) issueToken(sess model.Session, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(sessionTokenTTL)

	claims := jwt.MapClaims{
		"sub":  sess.UserID,
		"sid":  sess.ID,
		"name": sess.UserName,
		"tipo": string(sess.UserType),
		"iat":  now.Unix(),
		"exp":  expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(u.jwtSecret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}
