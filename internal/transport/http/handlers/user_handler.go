package handlers

import (
	"errors"
	"net/http"

	"github.com/D4sh12/e-commerce-api/internal/service"
	"github.com/D4sh12/e-commerce-api/internal/transport/http/dto"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type UserHandler struct {
	users service.UserService
	log   *zap.Logger
}

func NewUserHandler(users service.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Signup godoc
// @Summary Регистрация пользователя
// @Description Создаёт аккаунт и отправляет письмо с кодом подтверждения
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupRequest true "Данные регистрации"
// @Success 201 {object} dto.Response "Аккаунт создан"
// @Failure 400 {object} dto.Response "Неверные данные"
// @Failure 409 {object} dto.Response "Email уже занят"
// @Router /auth/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid signup request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	_, err := h.users.Signup(c.Request.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, dto.NewError(verr.Message))
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			c.JSON(http.StatusConflict, dto.NewError("User with this email already exists"))
			return
		}
		h.log.Error("Signup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		return
	}

	c.JSON(http.StatusCreated, dto.NewSuccess("User successfully created. Please check your email to continue.", nil))
}

// Login godoc
// @Summary Авторизация пользователя
// @Description Выдаёт access-токен активированному пользователю
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Учётные данные"
// @Success 200 {object} dto.Response{data=dto.LoginResponse} "Успешный вход"
// @Failure 403 {object} dto.Response "Аккаунт не активирован"
// @Failure 404 {object} dto.Response "Неверные учётные данные"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	res, err := h.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusNotFound, dto.NewError("Incorrect username or password"))
		case errors.Is(err, service.ErrNotActivated):
			c.JSON(http.StatusForbidden, dto.NewError("Your account has not yet been verified"))
		default:
			h.log.Error("Login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("User successfully logged in", dto.LoginResponse{
		Token: res.Token,
		User:  dto.NewUserResponse(res.User),
	}))
}

// Activate godoc
// @Summary Активация аккаунта по ссылке из письма
// @Tags auth
// @Produce json
// @Param token path string true "Токен активации"
// @Success 200 {object} dto.Response "Аккаунт активирован"
// @Failure 400 {object} dto.Response "Токен невалиден или аккаунт уже активирован"
// @Router /auth/activate/{token} [get]
func (h *UserHandler) Activate(c *gin.Context) {
	token := c.Param("token")

	err := h.users.ActivateByToken(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, dto.NewError("Account activation token is invalid"))
		case errors.Is(err, service.ErrAlreadyActivated):
			c.JSON(http.StatusBadRequest, dto.NewError("User account already activated"))
		default:
			h.log.Error("Activation failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("User successfully activated", nil))
}

// VerifyCode godoc
// @Summary Активация аккаунта по коду подтверждения
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body dto.VerifyCodeRequest true "Email и код подтверждения"
// @Success 200 {object} dto.Response "Аккаунт активирован"
// @Failure 400 {object} dto.Response "Код неверен или аккаунт уже активирован"
// @Router /auth/verify-code [post]
func (h *UserHandler) VerifyCode(c *gin.Context) {
	var req dto.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid verify code request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	err := h.users.VerifyCode(c.Request.Context(), req.Email, req.ConfirmationCode)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, dto.NewError("Invalid confirmation code"))
		case errors.Is(err, service.ErrAlreadyActivated):
			c.JSON(http.StatusBadRequest, dto.NewError("User account already activated"))
		default:
			h.log.Error("Code verification failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("User successfully activated", nil))
}

// ResendCode godoc
// @Summary Повторная отправка кода подтверждения
// @Tags auth
// @Accept json
// @Produce json
// @Param resend body dto.ResendCodeRequest true "Email пользователя"
// @Success 200 {object} dto.Response "Код отправлен"
// @Failure 400 {object} dto.Response "Аккаунт уже активирован"
// @Failure 404 {object} dto.Response "Пользователь не найден"
// @Router /auth/resend-code [post]
func (h *UserHandler) ResendCode(c *gin.Context) {
	var req dto.ResendCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid resend code request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	err := h.users.ResendCode(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, dto.NewError("User not found"))
		case errors.Is(err, service.ErrAlreadyActivated):
			c.JSON(http.StatusBadRequest, dto.NewError("User account already activated"))
		default:
			h.log.Error("Resend code failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		}
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Confirmation code successfully resent. Please check your email to continue.", nil))
}

// RequestPasswordReset godoc
// @Summary Запрос на сброс пароля
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Email пользователя"
// @Success 200 {object} dto.Response "Код сброса отправлен"
// @Failure 404 {object} dto.Response "Пользователь не найден"
// @Router /auth/reset-password [post]
func (h *UserHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid password reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	err := h.users.RequestPasswordReset(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, dto.NewError("User not found"))
			return
		}
		h.log.Error("Password reset request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("Request successfully submitted. Please check your email to continue.", nil))
}

// ConfirmPasswordReset godoc
// @Summary Смена пароля по коду сброса
// @Tags auth
// @Accept json
// @Produce json
// @Param confirm body dto.ConfirmResetPasswordRequest true "Email, код сброса и новый пароль"
// @Success 200 {object} dto.Response "Пароль изменён"
// @Failure 400 {object} dto.Response "Код неверен или пароль слишком слабый"
// @Router /auth/reset-password/verify-code [post]
func (h *UserHandler) ConfirmPasswordReset(c *gin.Context) {
	var req dto.ConfirmResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid confirm password reset request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewError("Invalid request body"))
		return
	}

	err := h.users.ConfirmPasswordReset(c.Request.Context(), req.Email, req.ResetCode, req.NewPassword)
	if err != nil {
		if verr, ok := service.AsValidationError(err); ok {
			c.JSON(http.StatusBadRequest, dto.NewError(verr.Message))
			return
		}
		if errors.Is(err, service.ErrInvalidResetCode) {
			c.JSON(http.StatusBadRequest, dto.NewError("Invalid reset code"))
			return
		}
		h.log.Error("Password reset confirm failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccess("User password successfully changed", nil))
}
