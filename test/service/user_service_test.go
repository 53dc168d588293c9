package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/producer"
	"github.com/D4sh12/e-commerce-api/internal/repository"
	"github.com/D4sh12/e-commerce-api/internal/service"

	"go.uber.org/zap"
)

// Моки зависимостей UserService

// MockUserRepo
type MockUserRepo struct {
	CreateFunc         func(ctx context.Context, u *models.User) error
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	GetByIDFunc        func(ctx context.Context, id uint) (*models.User, error)
	ExistsByEmailFunc  func(ctx context.Context, email string) (bool, error)
	UpdatePasswordFunc func(ctx context.Context, user *models.User) error
	UpdateFieldsFunc   func(ctx context.Context, id uint, fields map[string]any) error
}

func (m *MockUserRepo) Create(ctx context.Context, u *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	u.ID = 1
	return nil
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *MockUserRepo) UpdatePassword(ctx context.Context, user *models.User) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepo) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if m.UpdateFieldsFunc != nil {
		return m.UpdateFieldsFunc(ctx, id, fields)
	}
	return nil
}

// MockCartRepo
type MockCartRepo struct {
	CreateFunc      func(ctx context.Context, c *models.Cart) error
	GetByUserIDFunc func(ctx context.Context, userID uint) (*models.Cart, error)
}

func (m *MockCartRepo) Create(ctx context.Context, c *models.Cart) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockCartRepo) GetByUserID(ctx context.Context, userID uint) (*models.Cart, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

// MockPasswordHasher
type MockPasswordHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) bool
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed_" + password, nil
}

func (m *MockPasswordHasher) Compare(hash, password string) bool {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return hash == "hashed_"+password
}

// MockTokenProvider
type MockTokenProvider struct {
	SignAccessFunc                 func(ctx context.Context, sub uint, isAdmin bool, ttl time.Duration) (string, time.Time, error)
	SignActivationFunc             func(ctx context.Context, sub uint, ttl time.Duration) (string, time.Time, error)
	ParseAndValidateAccessFunc     func(ctx context.Context, token string) (*service.Claims, error)
	ParseAndValidateActivationFunc func(ctx context.Context, token string) (*service.Claims, error)
}

func (m *MockTokenProvider) SignAccess(ctx context.Context, sub uint, isAdmin bool, ttl time.Duration) (string, time.Time, error) {
	if m.SignAccessFunc != nil {
		return m.SignAccessFunc(ctx, sub, isAdmin, ttl)
	}
	return "access_token", time.Now().Add(ttl), nil
}

func (m *MockTokenProvider) SignActivation(ctx context.Context, sub uint, ttl time.Duration) (string, time.Time, error) {
	if m.SignActivationFunc != nil {
		return m.SignActivationFunc(ctx, sub, ttl)
	}
	return "activation_token", time.Now().Add(ttl), nil
}

func (m *MockTokenProvider) ParseAndValidateAccess(ctx context.Context, token string) (*service.Claims, error) {
	if m.ParseAndValidateAccessFunc != nil {
		return m.ParseAndValidateAccessFunc(ctx, token)
	}
	return &service.Claims{UserID: 1, Exp: time.Now().Add(time.Hour)}, nil
}

func (m *MockTokenProvider) ParseAndValidateActivation(ctx context.Context, token string) (*service.Claims, error) {
	if m.ParseAndValidateActivationFunc != nil {
		return m.ParseAndValidateActivationFunc(ctx, token)
	}
	return &service.Claims{UserID: 1, Exp: time.Now().Add(time.Hour)}, nil
}

// MockEmailProducer
type MockEmailProducer struct {
	SendEmailFunc func(ctx context.Context, key string, msg producer.EmailMessage) error
	Sent          []producer.EmailMessage
}

func (m *MockEmailProducer) SendEmail(ctx context.Context, key string, msg producer.EmailMessage) error {
	m.Sent = append(m.Sent, msg)
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, key, msg)
	}
	return nil
}

// Вспомогательная функция для создания тестового UserService
func createTestUserService(
	users *MockUserRepo,
	carts *MockCartRepo,
	hasher *MockPasswordHasher,
	tokens *MockTokenProvider,
	emails *MockEmailProducer,
) service.UserService {
	if users == nil {
		users = &MockUserRepo{}
	}
	if carts == nil {
		carts = &MockCartRepo{}
	}
	if hasher == nil {
		hasher = &MockPasswordHasher{}
	}
	if tokens == nil {
		tokens = &MockTokenProvider{}
	}
	repo := &repository.Repository{
		Users: users,
		Carts: carts,
	}
	return service.NewUserService(
		repo,
		hasher,
		tokens,
		emails,
		time.Hour,    // accessTTL
		24*time.Hour, // activationTTL
		zap.NewNop(),
	)
}

func validSignup() service.SignupInput {
	return service.SignupInput{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Password:  "password123",
	}
}

// Теперь начинаем писать тесты

func TestUserService_Signup_Success(t *testing.T) {
	users := &MockUserRepo{}
	emails := &MockEmailProducer{}

	users.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
		return false, nil
	}
	users.CreateFunc = func(ctx context.Context, u *models.User) error {
		if u.Email != "john@example.com" {
			t.Errorf("Expected email john@example.com, got %s", u.Email)
		}
		if u.Password != "hashed_password123" {
			t.Errorf("Expected hashed password, got %s", u.Password)
		}
		if u.IsActivated {
			t.Error("Expected IsActivated to be false")
		}
		if u.ConfirmationCode == nil || len(*u.ConfirmationCode) != 6 {
			t.Errorf("Expected 6-digit confirmation code, got %v", u.ConfirmationCode)
		}
		u.ID = 1
		return nil
	}

	svc := createTestUserService(users, nil, nil, nil, emails)

	u, err := svc.Signup(context.Background(), validSignup())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if u.ID != 1 {
		t.Errorf("Expected user ID 1, got %d", u.ID)
	}

	if len(emails.Sent) != 1 {
		t.Fatalf("Expected 1 email, got %d", len(emails.Sent))
	}
	msg := emails.Sent[0]
	if msg.Template != producer.TemplateConfirmation {
		t.Errorf("Expected confirmation_email template, got %s", msg.Template)
	}
	if msg.Subject != "Confirmation Email" {
		t.Errorf("Expected Confirmation Email subject, got %s", msg.Subject)
	}
	if msg.To != "john@example.com" {
		t.Errorf("Expected recipient john@example.com, got %s", msg.To)
	}
	if msg.Data["activation_token"] != "activation_token" {
		t.Errorf("Expected activation token in email data, got %v", msg.Data)
	}
}

func TestUserService_Signup_Validation(t *testing.T) {
	svc := createTestUserService(nil, nil, nil, nil, &MockEmailProducer{})
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*service.SignupInput)
		want   string
	}{
		{"missing first name", func(in *service.SignupInput) { in.FirstName = " " }, "The first name is required"},
		{"missing last name", func(in *service.SignupInput) { in.LastName = "" }, "The last name is required"},
		{"invalid email", func(in *service.SignupInput) { in.Email = "not-an-email" }, "The email provided is invalid"},
		{"short password", func(in *service.SignupInput) { in.Password = "a1" }, "The password should be at least 8 characters long"},
		{"password without digit", func(in *service.SignupInput) { in.Password = "passwords" }, "The password should contain at least one letter and one digit"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validSignup()
			tc.mutate(&in)
			_, err := svc.Signup(ctx, in)
			verr, ok := service.AsValidationError(err)
			if !ok {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Message != tc.want {
				t.Errorf("Expected message %q, got %q", tc.want, verr.Message)
			}
		})
	}
}

func TestUserService_Signup_EmailExists(t *testing.T) {
	users := &MockUserRepo{}
	users.ExistsByEmailFunc = func(ctx context.Context, email string) (bool, error) {
		return true, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})

	_, err := svc.Signup(context.Background(), validSignup())
	if err != service.ErrEmailExists {
		t.Fatalf("Expected ErrEmailExists, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	users := &MockUserRepo{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{
			ID:          1,
			Email:       "john@example.com",
			Password:    "hashed_password123",
			IsActivated: true,
		}, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})

	res, err := svc.Login(context.Background(), "john@example.com", "password123")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if res.Token != "access_token" {
		t.Errorf("Expected access_token, got %s", res.Token)
	}
	if res.User.ID != 1 {
		t.Errorf("Expected user ID 1, got %d", res.User.ID)
	}
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	users := &MockUserRepo{}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})
	ctx := context.Background()

	// Пользователь не найден
	if _, err := svc.Login(ctx, "nobody@example.com", "password123"); err != service.ErrInvalidCredentials {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}

	// Неверный пароль
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Password: "hashed_password123", IsActivated: true}, nil
	}
	if _, err := svc.Login(ctx, "john@example.com", "wrongpass1"); err != service.ErrInvalidCredentials {
		t.Fatalf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_NotActivated(t *testing.T) {
	users := &MockUserRepo{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Password: "hashed_password123", IsActivated: false}, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})

	if _, err := svc.Login(context.Background(), "john@example.com", "password123"); err != service.ErrNotActivated {
		t.Fatalf("Expected ErrNotActivated, got %v", err)
	}
}

func TestUserService_ActivateByToken_Success(t *testing.T) {
	code := "123456"
	users := &MockUserRepo{}
	users.GetByIDFunc = func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsActivated: false, ConfirmationCode: &code}, nil
	}
	var updated map[string]any
	users.UpdateFieldsFunc = func(ctx context.Context, id uint, fields map[string]any) error {
		updated = fields
		return nil
	}

	carts := &MockCartRepo{}
	cartCreated := false
	carts.CreateFunc = func(ctx context.Context, c *models.Cart) error {
		cartCreated = true
		if c.UserID != 1 {
			t.Errorf("Expected cart for user 1, got %d", c.UserID)
		}
		return nil
	}

	svc := createTestUserService(users, carts, nil, nil, &MockEmailProducer{})

	if err := svc.ActivateByToken(context.Background(), "activation_token"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated["is_activated"] != true {
		t.Errorf("Expected is_activated update, got %v", updated)
	}
	if !cartCreated {
		t.Error("Expected cart to be created on activation")
	}
}

func TestUserService_ActivateByToken_Invalid(t *testing.T) {
	tokens := &MockTokenProvider{}
	tokens.ParseAndValidateActivationFunc = func(ctx context.Context, token string) (*service.Claims, error) {
		return nil, service.ErrInvalidToken
	}
	svc := createTestUserService(nil, nil, nil, tokens, &MockEmailProducer{})

	if err := svc.ActivateByToken(context.Background(), "garbage"); err != service.ErrInvalidToken {
		t.Fatalf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestUserService_ActivateByToken_AlreadyActivated(t *testing.T) {
	users := &MockUserRepo{}
	users.GetByIDFunc = func(ctx context.Context, id uint) (*models.User, error) {
		return &models.User{ID: id, IsActivated: true}, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})

	if err := svc.ActivateByToken(context.Background(), "activation_token"); err != service.ErrAlreadyActivated {
		t.Fatalf("Expected ErrAlreadyActivated, got %v", err)
	}
}

func TestUserService_VerifyCode(t *testing.T) {
	code := "123456"
	users := &MockUserRepo{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == "john@example.com" {
			return &models.User{ID: 1, Email: email, ConfirmationCode: &code}, nil
		}
		return nil, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})
	ctx := context.Background()

	if err := svc.VerifyCode(ctx, "john@example.com", "000000"); err != service.ErrInvalidCode {
		t.Fatalf("Expected ErrInvalidCode for wrong code, got %v", err)
	}
	if err := svc.VerifyCode(ctx, "nobody@example.com", code); err != service.ErrInvalidCode {
		t.Fatalf("Expected ErrInvalidCode for unknown email, got %v", err)
	}
	if err := svc.VerifyCode(ctx, "john@example.com", code); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestUserService_ResendCode(t *testing.T) {
	users := &MockUserRepo{}
	emails := &MockEmailProducer{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == "john@example.com" {
			return &models.User{ID: 1, Email: email, FirstName: "John"}, nil
		}
		return nil, nil
	}
	var updated map[string]any
	users.UpdateFieldsFunc = func(ctx context.Context, id uint, fields map[string]any) error {
		updated = fields
		return nil
	}

	svc := createTestUserService(users, nil, nil, nil, emails)
	ctx := context.Background()

	if err := svc.ResendCode(ctx, "nobody@example.com"); err != service.ErrUserNotFound {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}

	if err := svc.ResendCode(ctx, "john@example.com"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if _, ok := updated["confirmation_code"]; !ok {
		t.Errorf("Expected confirmation_code update, got %v", updated)
	}
	if len(emails.Sent) != 1 || emails.Sent[0].Template != "confirmation_email" {
		t.Fatalf("Expected confirmation email to be resent, got %v", emails.Sent)
	}
}

func TestUserService_ResendCode_AlreadyActivated(t *testing.T) {
	users := &MockUserRepo{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		return &models.User{ID: 1, Email: email, IsActivated: true}, nil
	}
	svc := createTestUserService(users, nil, nil, nil, &MockEmailProducer{})

	if err := svc.ResendCode(context.Background(), "john@example.com"); err != service.ErrAlreadyActivated {
		t.Fatalf("Expected ErrAlreadyActivated, got %v", err)
	}
}

func TestUserService_PasswordReset_Flow(t *testing.T) {
	resetCode := "654321"
	users := &MockUserRepo{}
	emails := &MockEmailProducer{}
	users.GetByEmailFunc = func(ctx context.Context, email string) (*models.User, error) {
		if email == "john@example.com" {
			return &models.User{ID: 1, Email: email, FirstName: "John", ResetCode: &resetCode}, nil
		}
		return nil, nil
	}
	var updated map[string]any
	users.UpdateFieldsFunc = func(ctx context.Context, id uint, fields map[string]any) error {
		updated = fields
		return nil
	}

	svc := createTestUserService(users, nil, nil, nil, emails)
	ctx := context.Background()

	if err := svc.RequestPasswordReset(ctx, "nobody@example.com"); err != service.ErrUserNotFound {
		t.Fatalf("Expected ErrUserNotFound, got %v", err)
	}

	if err := svc.RequestPasswordReset(ctx, "john@example.com"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(emails.Sent) != 1 || emails.Sent[0].Template != "password_reset_email" {
		t.Fatalf("Expected password reset email, got %v", emails.Sent)
	}

	// неправильный код
	if err := svc.ConfirmPasswordReset(ctx, "john@example.com", "000000", "newpass123"); err != service.ErrInvalidResetCode {
		t.Fatalf("Expected ErrInvalidResetCode, got %v", err)
	}

	// слабый новый пароль
	if err := svc.ConfirmPasswordReset(ctx, "john@example.com", resetCode, "short"); err == nil {
		t.Fatal("Expected validation error for weak password, got nil")
	}

	// успешная смена
	if err := svc.ConfirmPasswordReset(ctx, "john@example.com", resetCode, "newpass123"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated["password"] != "hashed_newpass123" {
		t.Errorf("Expected hashed new password, got %v", updated)
	}
	if updated["reset_code"] != nil {
		t.Errorf("Expected reset_code cleared, got %v", updated)
	}
}

func TestUserService_Signup_EmailFailureDoesNotFail(t *testing.T) {
	emails := &MockEmailProducer{}
	emails.SendEmailFunc = func(ctx context.Context, key string, msg producer.EmailMessage) error {
		return context.DeadlineExceeded
	}
	svc := createTestUserService(nil, nil, nil, nil, emails)

	if _, err := svc.Signup(context.Background(), validSignup()); err != nil {
		t.Fatalf("Expected signup to succeed despite email failure, got %v", err)
	}
}
