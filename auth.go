package supabase

import (
	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
)

// SignInWithEmailPassword authenticates against GoTrue and returns the
// session. The client itself is not mutated; pass the access token to WithJWT
// to issue requests as that user.
func (c *Client) SignInWithEmailPassword(email, password string) (types.Session, error) {
	token, err := c.Auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return types.Session{}, err
	}
	return token.Session, nil
}

// RefreshToken exchanges a refresh token for a new session.
func (c *Client) RefreshToken(refreshToken string) (types.Session, error) {
	token, err := c.Auth.RefreshToken(refreshToken)
	if err != nil {
		return types.Session{}, err
	}
	return token.Session, nil
}

// AuthProvider returns the GoTrue-backed implementation of the AuthProvider
// contract.
func (c *Client) AuthProvider() AuthProvider {
	return &gotrueAuth{client: c.Auth}
}

type gotrueAuth struct {
	client gotrue.Client
}

var _ AuthProvider = (*gotrueAuth)(nil)

func (a *gotrueAuth) SignUp(email, password string) (Session, error) {
	resp, err := a.client.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return Session{}, err
	}
	return toSession(resp.Session), nil
}

func (a *gotrueAuth) SignIn(email, password string) (Session, error) {
	token, err := a.client.SignInWithEmailPassword(email, password)
	if err != nil {
		return Session{}, err
	}
	return toSession(token.Session), nil
}

func (a *gotrueAuth) SignOut() error {
	return a.client.Logout()
}

func (a *gotrueAuth) User() (User, error) {
	resp, err := a.client.GetUser()
	if err != nil {
		return User{}, err
	}
	return User{
		ID:       resp.ID.String(),
		Email:    resp.Email,
		Metadata: resp.UserMetadata,
	}, nil
}

func (a *gotrueAuth) Refresh(refreshToken string) (Session, error) {
	token, err := a.client.RefreshToken(refreshToken)
	if err != nil {
		return Session{}, err
	}
	return toSession(token.Session), nil
}

func toSession(s types.Session) Session {
	return Session{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
	}
}
