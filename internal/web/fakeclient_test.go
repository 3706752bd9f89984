package web

import (
	"context"
	"sync"
	"time"

	"github.com/badmarinesstudio/horizon-web/internal/api"
)

// fakeClient implements api.Client with programmable results.
type fakeClient struct {
	mu    sync.Mutex
	calls []string

	loginToken         string
	loginErr           error
	refreshToken       string
	refreshErr         error
	revokeErr          error
	profileUser        *api.User
	profileErr         error
	registerErr        error
	changeEmailErr     error
	changePasswordErr  error
	deleteAccountErr   error
	resetRequestErr    error
	resetValidateErr   error
	resetConfirmErr    error
	emailValidationErr error
}

func (f *fakeClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeClient) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}

func (f *fakeClient) Login(ctx context.Context, creds api.Credentials) (string, error) {
	f.record("login")
	return f.loginToken, f.loginErr
}

func (f *fakeClient) Refresh(ctx context.Context) (string, error) {
	f.record("refresh")
	return f.refreshToken, f.refreshErr
}

func (f *fakeClient) Revoke(ctx context.Context) error {
	f.record("revoke")
	return f.revokeErr
}

// Profile takes long enough that a handler has returned, and its request
// context has been cancelled, before the result is ready.
func (f *fakeClient) Profile(ctx context.Context) (*api.User, error) {
	f.record("profile")
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(50 * time.Millisecond):
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.profileUser, f.profileErr
}

func (f *fakeClient) Register(ctx context.Context, reg api.Registration) error {
	f.record("register")
	return f.registerErr
}

func (f *fakeClient) ChangeEmail(ctx context.Context, newEmail, password string) error {
	f.record("changeEmail")
	return f.changeEmailErr
}

func (f *fakeClient) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	f.record("changePassword")
	return f.changePasswordErr
}

func (f *fakeClient) DeleteAccount(ctx context.Context, password string) error {
	f.record("deleteAccount")
	return f.deleteAccountErr
}

func (f *fakeClient) RequestPasswordReset(ctx context.Context, email string) error {
	f.record("resetRequest")
	return f.resetRequestErr
}

func (f *fakeClient) ValidatePasswordReset(ctx context.Context, token string) error {
	f.record("resetValidate")
	return f.resetValidateErr
}

func (f *fakeClient) ConfirmPasswordReset(ctx context.Context, token, password string) error {
	f.record("resetConfirm")
	return f.resetConfirmErr
}

func (f *fakeClient) ConfirmEmailValidation(ctx context.Context, token string) error {
	f.record("emailValidation")
	return f.emailValidationErr
}
