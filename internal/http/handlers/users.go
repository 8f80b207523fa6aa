package handlers

import (
	"net/http"
	"strings"

	"cabadmin/internal/domain/models"
	"cabadmin/internal/repositories"

	"github.com/gin-gonic/gin"
)

type userInput struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

func (in *userInput) validate(c *gin.Context) bool {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if in.FirstName == "" || in.LastName == "" || in.Phone == "" || in.Email == "" {
		respondError(c, http.StatusBadRequest, "validation_error",
			"first_name, last_name, phone and email are required", nil)
		return false
	}
	return true
}

// GET /api/users
func GetUsers(c *gin.Context) {
	repo := repositories.UserRepository{}
	users, err := repo.List(repositories.UserSearch{
		Term: strings.TrimSpace(c.Query("search")),
		By:   strings.TrimSpace(c.Query("search_by")),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GET /api/users/:id
func GetUserByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.UserRepository{}
	user, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// POST /api/users
func CreateUser(c *gin.Context) {
	var in userInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.UserRepository{}
	id, err := repo.Create(models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// PUT /api/users/:id
func UpdateUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var in userInput
	if !BindJSONOrError(c, &in) || !in.validate(c) {
		return
	}

	repo := repositories.UserRepository{}
	if err := repo.Update(id, models.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Phone:     in.Phone,
		Email:     in.Email,
	}); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id})
}

// DELETE /api/users/:id
func DeleteUser(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.UserRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
