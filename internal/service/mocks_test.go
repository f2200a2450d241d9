package service

import (
	"github.com/goforum-dev/goforum/internal/domain"
)

// Mock storages embed the Unimplemented bases: any method a test does not
// override fails with ErrNotImplemented instead of silently succeeding.

type MockThreadStorage struct {
	UnimplementedThreadStorage
	CreateThreadFunc func(payload domain.CreateThread, owner string) (domain.CreatedThread, error)
	CheckThreadFunc  func(id string) error
	DetailThreadFunc func(id string) (domain.ThreadRecord, error)
}

func (m *MockThreadStorage) CreateThread(payload domain.CreateThread, owner string) (domain.CreatedThread, error) {
	if m.CreateThreadFunc != nil {
		return m.CreateThreadFunc(payload, owner)
	}
	return m.UnimplementedThreadStorage.CreateThread(payload, owner)
}

func (m *MockThreadStorage) CheckThread(id string) error {
	if m.CheckThreadFunc != nil {
		return m.CheckThreadFunc(id)
	}
	return m.UnimplementedThreadStorage.CheckThread(id)
}

func (m *MockThreadStorage) DetailThread(id string) (domain.ThreadRecord, error) {
	if m.DetailThreadFunc != nil {
		return m.DetailThreadFunc(id)
	}
	return m.UnimplementedThreadStorage.DetailThread(id)
}

type MockCommentStorage struct {
	UnimplementedCommentStorage
	CreateCommentFunc      func(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error)
	CheckCommentFunc       func(id string) error
	CommentsByThreadFunc   func(threadId string) ([]domain.CommentRecord, error)
	VerifyCommentOwnerFunc func(commentId, owner string) error
	HasLikeFunc            func(commentId, userId string) (bool, error)
	LikeCommentFunc        func(commentId, userId string) error
	UnlikeCommentFunc      func(commentId, userId string) error
	DeleteCommentFunc      func(commentId string) error
}

func (m *MockCommentStorage) CreateComment(payload domain.CreateComment, threadId, owner string) (domain.CreatedComment, error) {
	if m.CreateCommentFunc != nil {
		return m.CreateCommentFunc(payload, threadId, owner)
	}
	return m.UnimplementedCommentStorage.CreateComment(payload, threadId, owner)
}

func (m *MockCommentStorage) CheckComment(id string) error {
	if m.CheckCommentFunc != nil {
		return m.CheckCommentFunc(id)
	}
	return m.UnimplementedCommentStorage.CheckComment(id)
}

func (m *MockCommentStorage) CommentsByThread(threadId string) ([]domain.CommentRecord, error) {
	if m.CommentsByThreadFunc != nil {
		return m.CommentsByThreadFunc(threadId)
	}
	return m.UnimplementedCommentStorage.CommentsByThread(threadId)
}

func (m *MockCommentStorage) VerifyCommentOwner(commentId, owner string) error {
	if m.VerifyCommentOwnerFunc != nil {
		return m.VerifyCommentOwnerFunc(commentId, owner)
	}
	return m.UnimplementedCommentStorage.VerifyCommentOwner(commentId, owner)
}

func (m *MockCommentStorage) HasLike(commentId, userId string) (bool, error) {
	if m.HasLikeFunc != nil {
		return m.HasLikeFunc(commentId, userId)
	}
	return m.UnimplementedCommentStorage.HasLike(commentId, userId)
}

func (m *MockCommentStorage) LikeComment(commentId, userId string) error {
	if m.LikeCommentFunc != nil {
		return m.LikeCommentFunc(commentId, userId)
	}
	return m.UnimplementedCommentStorage.LikeComment(commentId, userId)
}

func (m *MockCommentStorage) UnlikeComment(commentId, userId string) error {
	if m.UnlikeCommentFunc != nil {
		return m.UnlikeCommentFunc(commentId, userId)
	}
	return m.UnimplementedCommentStorage.UnlikeComment(commentId, userId)
}

func (m *MockCommentStorage) DeleteComment(commentId string) error {
	if m.DeleteCommentFunc != nil {
		return m.DeleteCommentFunc(commentId)
	}
	return m.UnimplementedCommentStorage.DeleteComment(commentId)
}

type MockReplyStorage struct {
	UnimplementedReplyStorage
	CreateReplyFunc       func(payload domain.CreateReply, commentId, owner string) (domain.CreatedReply, error)
	CheckReplyFunc        func(id string) error
	RepliesByCommentsFunc func(commentIds []string) ([]domain.ReplyRecord, error)
	VerifyReplyOwnerFunc  func(replyId, owner string) error
	DeleteReplyFunc       func(replyId string) error
}

func (m *MockReplyStorage) CreateReply(payload domain.CreateReply, commentId, owner string) (domain.CreatedReply, error) {
	if m.CreateReplyFunc != nil {
		return m.CreateReplyFunc(payload, commentId, owner)
	}
	return m.UnimplementedReplyStorage.CreateReply(payload, commentId, owner)
}

func (m *MockReplyStorage) CheckReply(id string) error {
	if m.CheckReplyFunc != nil {
		return m.CheckReplyFunc(id)
	}
	return m.UnimplementedReplyStorage.CheckReply(id)
}

func (m *MockReplyStorage) RepliesByComments(commentIds []string) ([]domain.ReplyRecord, error) {
	if m.RepliesByCommentsFunc != nil {
		return m.RepliesByCommentsFunc(commentIds)
	}
	return m.UnimplementedReplyStorage.RepliesByComments(commentIds)
}

func (m *MockReplyStorage) VerifyReplyOwner(replyId, owner string) error {
	if m.VerifyReplyOwnerFunc != nil {
		return m.VerifyReplyOwnerFunc(replyId, owner)
	}
	return m.UnimplementedReplyStorage.VerifyReplyOwner(replyId, owner)
}

func (m *MockReplyStorage) DeleteReply(replyId string) error {
	if m.DeleteReplyFunc != nil {
		return m.DeleteReplyFunc(replyId)
	}
	return m.UnimplementedReplyStorage.DeleteReply(replyId)
}

type MockUserStorage struct {
	UnimplementedUserStorage
	CheckUsernameAvailableFunc func(username string) error
	SaveUserFunc               func(payload domain.RegisterUser) (domain.RegisteredUser, error)
	UserCredentialFunc         func(username string) (domain.CredentialUser, error)
}

func (m *MockUserStorage) CheckUsernameAvailable(username string) error {
	if m.CheckUsernameAvailableFunc != nil {
		return m.CheckUsernameAvailableFunc(username)
	}
	return m.UnimplementedUserStorage.CheckUsernameAvailable(username)
}

func (m *MockUserStorage) SaveUser(payload domain.RegisterUser) (domain.RegisteredUser, error) {
	if m.SaveUserFunc != nil {
		return m.SaveUserFunc(payload)
	}
	return m.UnimplementedUserStorage.SaveUser(payload)
}

func (m *MockUserStorage) UserCredential(username string) (domain.CredentialUser, error) {
	if m.UserCredentialFunc != nil {
		return m.UserCredentialFunc(username)
	}
	return m.UnimplementedUserStorage.UserCredential(username)
}

type MockAuthStorage struct {
	UnimplementedAuthStorage
	SaveRefreshTokenFunc   func(token string) error
	FindRefreshTokenFunc   func(token string) error
	DeleteRefreshTokenFunc func(token string) error
}

func (m *MockAuthStorage) SaveRefreshToken(token string) error {
	if m.SaveRefreshTokenFunc != nil {
		return m.SaveRefreshTokenFunc(token)
	}
	return m.UnimplementedAuthStorage.SaveRefreshToken(token)
}

func (m *MockAuthStorage) FindRefreshToken(token string) error {
	if m.FindRefreshTokenFunc != nil {
		return m.FindRefreshTokenFunc(token)
	}
	return m.UnimplementedAuthStorage.FindRefreshToken(token)
}

func (m *MockAuthStorage) DeleteRefreshToken(token string) error {
	if m.DeleteRefreshTokenFunc != nil {
		return m.DeleteRefreshTokenFunc(token)
	}
	return m.UnimplementedAuthStorage.DeleteRefreshToken(token)
}

type MockPasswordHasher struct {
	HashFunc    func(plain string) (string, error)
	CompareFunc func(plain, hashed string) error
}

func (m *MockPasswordHasher) Hash(plain string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(plain)
	}
	return "hashed:" + plain, nil
}

func (m *MockPasswordHasher) Compare(plain, hashed string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(plain, hashed)
	}
	return nil
}

type MockTokenManager struct {
	NewAccessTokenFunc     func(claims domain.TokenClaims) (string, error)
	NewRefreshTokenFunc    func(claims domain.TokenClaims) (string, error)
	DecodeRefreshTokenFunc func(token string) (domain.TokenClaims, error)
}

func (m *MockTokenManager) NewAccessToken(claims domain.TokenClaims) (string, error) {
	if m.NewAccessTokenFunc != nil {
		return m.NewAccessTokenFunc(claims)
	}
	return "access_token", nil
}

func (m *MockTokenManager) NewRefreshToken(claims domain.TokenClaims) (string, error) {
	if m.NewRefreshTokenFunc != nil {
		return m.NewRefreshTokenFunc(claims)
	}
	return "refresh_token", nil
}

func (m *MockTokenManager) DecodeRefreshToken(token string) (domain.TokenClaims, error) {
	if m.DecodeRefreshTokenFunc != nil {
		return m.DecodeRefreshTokenFunc(token)
	}
	return domain.TokenClaims{Id: "user-123", Username: "dicoding"}, nil
}
