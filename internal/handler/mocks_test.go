package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/goforum-dev/goforum/internal/domain"
	"github.com/goforum-dev/goforum/internal/jwt"
	"github.com/goforum-dev/goforum/internal/middleware"
)

type MockUserService struct {
	MockRegister         func(payload domain.RegisterUser) (domain.RegisteredUser, error)
	MockVerifyCredential func(payload domain.UserCredentials) (string, error)
}

func (m *MockUserService) Register(payload domain.RegisterUser) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return domain.RegisteredUser{}, nil // Default behavior
}

func (m *MockUserService) VerifyCredential(payload domain.UserCredentials) (string, error) {
	if m.MockVerifyCredential != nil {
		return m.MockVerifyCredential(payload)
	}
	return "user-123", nil // Default behavior
}

type MockAuthService struct {
	MockGenerateToken      func(claims domain.TokenClaims) (domain.TokenPair, error)
	MockRefreshAccessToken func(payload domain.RefreshToken) (string, error)
	MockRemoveRefreshToken func(payload domain.RefreshToken) error
}

func (m *MockAuthService) GenerateToken(claims domain.TokenClaims) (domain.TokenPair, error) {
	if m.MockGenerateToken != nil {
		return m.MockGenerateToken(claims)
	}
	return domain.TokenPair{AccessToken: "access_token", RefreshToken: "refresh_token"}, nil
}

func (m *MockAuthService) RefreshAccessToken(payload domain.RefreshToken) (string, error) {
	if m.MockRefreshAccessToken != nil {
		return m.MockRefreshAccessToken(payload)
	}
	return "access_token", nil
}

func (m *MockAuthService) RemoveRefreshToken(payload domain.RefreshToken) error {
	if m.MockRemoveRefreshToken != nil {
		return m.MockRemoveRefreshToken(payload)
	}
	return nil
}

type MockThreadService struct {
	MockCreate    func(payload domain.CreateThread, owner string) (domain.CreatedThread, error)
	MockGetDetail func(threadId string) (domain.DetailThread, error)
}

func (m *MockThreadService) Create(payload domain.CreateThread, owner string) (domain.CreatedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, owner)
	}
	return domain.CreatedThread{}, nil
}

func (m *MockThreadService) GetDetail(threadId string) (domain.DetailThread, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(threadId)
	}
	return domain.DetailThread{}, nil
}

type MockCommentService struct {
	MockCreate     func(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error)
	MockDelete     func(threadId, commentId, owner string) error
	MockToggleLike func(threadId, commentId, userId string) error
}

func (m *MockCommentService) Create(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, owner)
	}
	return domain.CreatedComment{}, nil
}

func (m *MockCommentService) Delete(threadId, commentId, owner string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, owner)
	}
	return nil
}

func (m *MockCommentService) ToggleLike(threadId, commentId, userId string) error {
	if m.MockToggleLike != nil {
		return m.MockToggleLike(threadId, commentId, userId)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload domain.CreateReply, threadId, commentId, owner string) (domain.CreatedReply, error)
	MockDelete func(threadId, commentId, replyId, owner string) error
}

func (m *MockReplyService) Create(payload domain.CreateReply, threadId, commentId, owner string) (domain.CreatedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload, threadId, commentId, owner)
	}
	return domain.CreatedReply{}, nil
}

func (m *MockReplyService) Delete(threadId, commentId, replyId, owner string) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, owner)
	}
	return nil
}

// Token helpers so tests can exercise handlers behind the auth middleware
// the same way the router wires them.

var testTokens = jwt.New("test_access_secret", "test_refresh_secret", time.Hour, time.Hour)

func needAuth(next http.HandlerFunc) http.HandlerFunc {
	return middleware.NeedAuth(testTokens)(next)
}

func bearerToken(t *testing.T, claims domain.TokenClaims) string {
	t.Helper()
	token, err := testTokens.NewAccessToken(claims)
	if err != nil {
		t.Fatalf("failed to sign test token: %s", err)
	}
	return "Bearer " + token
}
