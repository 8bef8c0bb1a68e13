package service

import (
	"context"

	"github.com/tglkwon/api.board.aquaco.work/internal/domain"
	"github.com/tglkwon/api.board.aquaco.work/internal/errors"
	"github.com/tglkwon/api.board.aquaco.work/internal/logger"
)

// ErrInvalidCredentials is returned for an unknown id and for a wrong
// password alike.
var ErrInvalidCredentials = errors.Unauthorized("Invalid credentials")

type AuthService interface {
	Register(ctx context.Context, reg domain.Registration) error
	Login(ctx context.Context, creds domain.Credentials) (string, error)
}

type AuthStorage interface {
	SaveMember(ctx context.Context, member domain.Member) error
	Member(ctx context.Context, id domain.MemberId) (domain.Member, error)
}

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
	VerifyDummy(plain string) bool
}

type Jwt interface {
	NewToken(subject domain.Subject) (string, error)
}

type Auth struct {
	storage AuthStorage
	hasher  PasswordHasher
	jwt     Jwt
}

func NewAuth(storage AuthStorage, hasher PasswordHasher, jwt Jwt) *Auth {
	return &Auth{storage: storage, hasher: hasher, jwt: jwt}
}

// Register stores a new member with a hashed password. It does not log in.
func (a *Auth) Register(ctx context.Context, reg domain.Registration) error {
	if err := requiredAll("id", reg.Id, "password", reg.Password, "nickname", reg.Nickname); err != nil {
		return err
	}

	passHash, err := a.hasher.Hash(reg.Password)
	if err != nil {
		if !errors.IsValidation(err) {
			logger.Log.Error("failed to hash password", "error", err)
		}
		return err
	}

	if err := a.storage.SaveMember(ctx, domain.Member{Id: reg.Id, PassHash: passHash, Nickname: reg.Nickname}); err != nil {
		return err
	}
	logger.Log.Info("member registered", "member_id", reg.Id)
	return nil
}

// Login checks the credentials and returns an access token.
// Unknown ids and wrong passwords fail with the same error.
func (a *Auth) Login(ctx context.Context, creds domain.Credentials) (string, error) {
	if err := requiredAll("id", creds.Id, "password", creds.Password); err != nil {
		return "", err
	}

	member, err := a.storage.Member(ctx, creds.Id)
	if err != nil {
		if errors.IsNotFound(err) {
			a.hasher.VerifyDummy(creds.Password)
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !a.hasher.Verify(creds.Password, member.PassHash) {
		logger.Log.Info("password verification failed", "member_id", member.Id)
		return "", ErrInvalidCredentials
	}

	token, err := a.jwt.NewToken(domain.Subject{Id: member.Id, Nickname: member.Nickname})
	if err != nil {
		logger.Log.Error("failed to create jwt token", "member_id", member.Id, "error", err)
		return "", err
	}
	return token, nil
}
