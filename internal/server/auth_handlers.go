package server

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"vitrine/internal/middleware"
	"vitrine/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	tokenIssuer   = "vitrine-api"
	tokenAudience = "vitrine-client"
	tokenLifetime = 15 * 24 * time.Hour
	bcryptCost    = 10
)

// Register handles POST /api/register
// @Summary Register a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,profileImg=string} true "Registration request"
// @Success 200 {object} object{token=string,msg=string}
// @Failure 400 {object} models.ErrorResponse
// @Router /register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Password   string `json:"password"`
		ProfileImg string `json:"profileImg"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("All fields are required"))
	}

	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || strings.TrimSpace(req.Password) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("All fields are required"))
	}

	profileImg := strings.TrimSpace(req.ProfileImg)
	if profileImg == "" {
		profileImg = defaultAvatarURL(name)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}
	if existing != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewConflictError("User already exists"))
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}

	user := &models.User{
		Name:       name,
		Email:      email,
		Password:   string(hashedPassword),
		ProfileImg: profileImg,
	}
	if createErr := s.userRepo.Create(ctx, user); createErr != nil {
		return models.RespondWithError(c, errorStatus(createErr), createErr)
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setTokenCookie(c, token)

	middleware.Logger.InfoContext(ctx, "user registered", "user_id", user.ID)

	return c.JSON(fiber.Map{
		"token": token,
		"msg":   "User registered successfully",
	})
}

// Login handles POST /api/login
// @Summary Authenticate a user and return a session token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body object{email=string,password=string} true "Login credentials"
// @Success 200 {object} object{token=string,success=bool,user=models.User}
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	email := strings.TrimSpace(req.Email)
	if email == "" || strings.TrimSpace(req.Password) == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Email and password are required"))
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return models.RespondWithError(c, errorStatus(err), err)
	}
	// An unknown email and a wrong password are indistinguishable to the caller.
	if user == nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewAuthError("Invalid credentials"))
	}
	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); cmpErr != nil {
		return models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewAuthError("Invalid credentials"))
	}

	token, err := s.generateToken(user.ID)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError,
			models.NewInternalError(err))
	}
	s.setTokenCookie(c, token)

	return c.JSON(fiber.Map{
		"token":   token,
		"success": true,
		"user":    user,
	})
}

// generateToken creates a signed session token for the given user ID.
func (s *Server) generateToken(userID uint) (string, error) {
	if s.config.JWTSecret == "" {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": tokenIssuer,
		"aud": tokenAudience,
		"exp": now.Add(tokenLifetime).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.JWTSecret))
}

// generateJTI creates a unique JWT ID to prevent replay attacks
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}

// setTokenCookie mirrors the session token into an HTTP-only cookie.
func (s *Server) setTokenCookie(c *fiber.Ctx, token string) {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(tokenLifetime),
		HTTPOnly: true,
		Secure:   s.config.IsProduction(),
		SameSite: fiber.CookieSameSiteStrictMode,
	})
}

// defaultAvatarURL derives a generated avatar from the user's name.
func defaultAvatarURL(name string) string {
	return "https://api.dicebear.com/9.x/adventurer/svg?seed=" + url.QueryEscape(name)
}
