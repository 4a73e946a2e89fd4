package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/crypto/bcrypt"

	"blogapi/auth"
	"blogapi/dtos"
	"blogapi/models"
	"blogapi/repositories"
)

func GetUsers(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := users.List(r.Context())
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetUserById(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		user, err := users.Get(r.Context(), id)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, user)
	}
}

func GetUserByEmail(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		user, err := users.GetByEmail(r.Context(), email)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, user)
	}
}

func CreateUser(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "email, name and a password of at least 8 characters are required")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			RespondError(w, http.StatusInternalServerError, "failed to hash password")
			return
		}

		user := models.User{
			Email:    req.Email,
			Name:     req.Name,
			Image:    req.Image,
			Password: string(hashedPassword),
			Provider: "credentials",
		}
		if err := users.Create(r.Context(), &user); err != nil {
			respondRepoError(w, err)
			return
		}

		w.Header().Set("Location", "/api/users/"+user.ID)
		RespondJSON(w, http.StatusCreated, user)
	}
}

func SignIn(users *repositories.UserRepository, tokens *auth.TokenManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.SignInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		user, err := users.GetByEmail(r.Context(), req.Email)
		if errors.Is(err, repositories.ErrNotFound) {
			RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}
		if err != nil {
			respondRepoError(w, err)
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			RespondError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := tokens.Sign(user.ID, user.Email, string(models.RoleUser))
		if err != nil {
			RespondError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}
		RespondJSON(w, http.StatusOK, dtos.SignInResponse{Token: token, User: *user})
	}
}

func UpdateUser(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dtos.UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "name is required")
			return
		}

		user := models.User{ID: claims.UserID, Name: req.Name, Image: req.Image}
		if err := users.Update(r.Context(), &user); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, user)
	}
}

func DeleteUser(users *repositories.UserRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := users.Delete(r.Context(), id); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func RegisterDevice(devices *repositories.DeviceRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterDeviceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "token is required")
			return
		}

		if err := devices.Register(r.Context(), req.Token); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string]string{"message": "device registered"})
	}
}
