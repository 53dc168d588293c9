package service

import (
	"context"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/D4sh12/e-commerce-api/internal/models"
	"github.com/D4sh12/e-commerce-api/internal/producer"
	"github.com/D4sh12/e-commerce-api/internal/repository"

	"github.com/google/uuid"
	"github.com/nanorand/nanorand"
	"go.uber.org/zap"
)

var emailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type userService struct {
	repo   *repository.Repository
	hasher PasswordHasher
	tokens TokenProvider
	emails EmailProducer

	accessTTL     time.Duration
	activationTTL time.Duration
	now           func() time.Time

	log *zap.Logger
}

func NewUserService(
	repo *repository.Repository,
	hasher PasswordHasher,
	tokens TokenProvider,
	emails EmailProducer,
	accessTTL, activationTTL time.Duration,
	log *zap.Logger,
) UserService {
	return &userService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		emails: emails,

		accessTTL:     accessTTL,
		activationTTL: activationTTL,
		now:           time.Now,

		log: log,
	}
}

func validatePassword(password string) error {
	if len(password) < 8 {
		return NewValidationError("The password should be at least 8 characters long")
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter || !hasDigit {
		return NewValidationError("The password should contain at least one letter and one digit")
	}
	return nil
}

func validateSignup(in SignupInput) error {
	if strings.TrimSpace(in.FirstName) == "" {
		return NewValidationError("The first name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		return NewValidationError("The last name is required")
	}
	if !emailRegexp.MatchString(in.Email) {
		return NewValidationError("The email provided is invalid")
	}
	return validatePassword(in.Password)
}

func (s *userService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)

	if err := validateSignup(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.Users.ExistsByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	code, err := nanorand.Gen(6)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		Password:         hash,
		IsAdmin:          false,
		IsActivated:      false,
		ConfirmationCode: &code,
	}

	if err := s.repo.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	activationToken, _, err := s.tokens.SignActivation(ctx, u.ID, s.activationTTL)
	if err != nil {
		return nil, err
	}

	s.sendEmail(ctx, producer.NewConfirmationEmail(u.Email, u.FirstName, code, activationToken))

	return u, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Compare(user.Password, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActivated {
		return nil, ErrNotActivated
	}

	access, _, err := s.tokens.SignAccess(ctx, user.ID, user.IsAdmin, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: access, User: user}, nil
}

func (s *userService) ActivateByToken(ctx context.Context, token string) error {
	claims, err := s.tokens.ParseAndValidateActivation(ctx, token)
	if err != nil {
		return ErrInvalidToken
	}

	user, err := s.repo.Users.GetByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}
	return s.activate(ctx, user)
}

func (s *userService) VerifyCode(ctx context.Context, email, code string) error {
	user, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidCode
	}
	if user.IsActivated {
		return ErrAlreadyActivated
	}
	if user.ConfirmationCode == nil || *user.ConfirmationCode != code {
		return ErrInvalidCode
	}
	return s.activate(ctx, user)
}

func (s *userService) activate(ctx context.Context, user *models.User) error {
	if user.IsActivated {
		return ErrAlreadyActivated
	}

	err := s.repo.Users.UpdateFields(ctx, user.ID, map[string]any{
		"is_activated":      true,
		"confirmation_code": nil,
	})
	if err != nil {
		return err
	}

	// Корзина заводится при активации, одна на пользователя.
	cart, err := s.repo.Carts.GetByUserID(ctx, user.ID)
	if err != nil {
		return err
	}
	if cart == nil {
		if err := s.repo.Carts.Create(ctx, &models.Cart{UserID: user.ID}); err != nil {
			return err
		}
	}
	return nil
}

func (s *userService) ResendCode(ctx context.Context, email string) error {
	user, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsActivated {
		return ErrAlreadyActivated
	}

	code, err := nanorand.Gen(6)
	if err != nil {
		return err
	}
	if err := s.repo.Users.UpdateFields(ctx, user.ID, map[string]any{"confirmation_code": code}); err != nil {
		return err
	}

	activationToken, _, err := s.tokens.SignActivation(ctx, user.ID, s.activationTTL)
	if err != nil {
		return err
	}

	s.sendEmail(ctx, producer.NewConfirmationEmail(user.Email, user.FirstName, code, activationToken))
	return nil
}

func (s *userService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, err := nanorand.Gen(6)
	if err != nil {
		return err
	}
	if err := s.repo.Users.UpdateFields(ctx, user.ID, map[string]any{"reset_code": code}); err != nil {
		return err
	}

	s.sendEmail(ctx, producer.NewPasswordResetEmail(user.Email, user.FirstName, code))
	return nil
}

func (s *userService) ConfirmPasswordReset(ctx context.Context, email, resetCode, newPassword string) error {
	user, err := s.repo.Users.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil || user.ResetCode == nil || *user.ResetCode != resetCode {
		return ErrInvalidResetCode
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.repo.Users.UpdateFields(ctx, user.ID, map[string]any{
		"password":   hash,
		"reset_code": nil,
	})
}

// Отправка письма — best effort: сбой брокера не должен ронять запрос.
func (s *userService) sendEmail(ctx context.Context, msg producer.EmailMessage) {
	if s.emails == nil {
		return
	}
	if err := s.emails.SendEmail(ctx, uuid.NewString(), msg); err != nil {
		s.log.Warn("Не удалось отправить письмо в очередь", zap.String("to", msg.To), zap.String("template", msg.Template), zap.Error(err))
	}
}
