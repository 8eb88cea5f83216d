package service

import (
	"time"

	"attendra/internal/entity"
	"attendra/internal/utils"
)

type JWTAccessIssuer struct {
	Manager *utils.JWTManager
}

func (i JWTAccessIssuer) IssueAccessToken(user entity.User) (string, time.Duration, error) {
	return i.Manager.IssueAccessToken(user.ID.String(), string(user.Role), user.FullName)
}
