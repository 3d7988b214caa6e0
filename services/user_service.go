package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"hms_back_end_go/auth"
	"hms_back_end_go/errs"
	"hms_back_end_go/models"
	"hms_back_end_go/validators"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

func normalizeIdentifier(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Usernames are stored as entered but matched case-insensitively, so a user
// who registered as JohnDoe can log in as johndoe. Emails are normalized on
// the way in, so plain equality is enough for them.
const (
	userCredentialsByIdentifier = `SELECT id, username, email, password_hash FROM users WHERE LOWER(username) = $1 OR email = $1`
	userEmailByIdentifier       = `SELECT email FROM users WHERE LOWER(username) = $1 OR email = $1`
)

func RegisterUser(c *gin.Context, pool *pgxpool.Pool) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Username == "" || req.Email == "" || req.Password == "" {
		errs.JSON(c, &errs.ValidationError{Reason: "Missing required fields"})
		return
	}
	email := normalizeIdentifier(req.Email)

	conn, err := pool.Acquire(c)
	if err != nil {
		errs.JSON(c, err)
		return
	}
	defer conn.Release()

	var existingID int64
	err = conn.QueryRow(c, "SELECT id FROM users WHERE LOWER(username) = LOWER($1) OR email = $2", req.Username, email).Scan(&existingID)
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username or email already taken"})
		return
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		errs.JSON(c, err)
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	_, err = conn.Exec(c, "INSERT INTO users (username, email, password_hash) VALUES ($1, $2, $3)", req.Username, email, string(hashedPassword))
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

func LoginUser(c *gin.Context, pool *pgxpool.Pool) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Identifier == "" || req.Password == "" {
		errs.JSON(c, &errs.ValidationError{Reason: "Missing required fields"})
		return
	}
	identifier := normalizeIdentifier(req.Identifier)

	var user models.User
	var storedHash string
	err := pool.QueryRow(c, userCredentialsByIdentifier, identifier).
		Scan(&user.ID, &user.Username, &user.Email, &storedHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.GenerateToken(auth.User{ID: user.Username}, "staff")
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

func ForgotPassword(c *gin.Context, pool *pgxpool.Pool) {
	var req models.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	identifier := normalizeIdentifier(req.Identifier)

	tokenBytes := make([]byte, 20)
	if _, err := rand.Read(tokenBytes); err != nil {
		errs.JSON(c, err)
		return
	}
	token := hex.EncodeToString(tokenBytes)
	expires := time.Now().Add(time.Hour)

	var email string
	err := pool.QueryRow(c, userEmailByIdentifier, identifier).Scan(&email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.NotFoundError{Entity: "User"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	_, err = pool.Exec(c, "UPDATE users SET reset_token = $1, reset_expires = $2 WHERE email = $3", token, expires, email)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	if err := validators.SendPasswordResetEmail(email, token); err != nil {
		log.Printf("Failed to send reset email: %v", err)
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset email sent"})
}

func ResetPassword(c *gin.Context, pool *pgxpool.Pool) {
	var req models.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if req.Token == "" || req.Password == "" {
		errs.JSON(c, &errs.ValidationError{Reason: "Missing required fields"})
		return
	}

	// Token is single-use and only valid while reset_expires is ahead of now.
	var userID int64
	err := pool.QueryRow(c, "SELECT id FROM users WHERE reset_token = $1 AND reset_expires > NOW()", req.Token).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			errs.JSON(c, &errs.ValidationError{Field: "token", Reason: "Invalid or expired token"})
		} else {
			errs.JSON(c, err)
		}
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	_, err = pool.Exec(c,
		"UPDATE users SET password_hash = $1, reset_token = NULL, reset_expires = NULL WHERE reset_token = $2",
		string(hashed), req.Token)
	if err != nil {
		errs.JSON(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successful"})
}
