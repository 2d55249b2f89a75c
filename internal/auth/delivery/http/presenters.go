package http

import (
	"time"

	"productivity-calendar/internal/auth"
	"productivity-calendar/internal/model"
)

type credentialsReq struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required,max=128"`
}

func (r credentialsReq) toRegisterInput() auth.RegisterInput {
	return auth.RegisterInput{Email: r.Email, Password: r.Password}
}

func (r credentialsReq) toLoginInput() auth.LoginInput {
	return auth.LoginInput{Email: r.Email, Password: r.Password}
}

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type tokenResp struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        userResp  `json:"user"`
}

func newTokenResp(o auth.TokenOutput) tokenResp {
	return tokenResp{
		AccessToken: o.Token,
		TokenType:   "bearer",
		ExpiresAt:   o.ExpiresAt,
		User:        newUserResp(o.User),
	}
}
