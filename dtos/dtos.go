package dtos

import (
	"github.com/go-playground/validator/v10"

	"blogapi/models"
)

var validate = validator.New()

// Validate runs the struct tags of any request body through the shared
// validator instance.
func Validate(body any) error {
	return validate.Struct(body)
}

type CreatePostRequest struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Cover       string   `json:"cover"`
	Images      []string `json:"images"`
	Content     string   `json:"content" validate:"required"`
	Tags        []string `json:"tags"`
}

type UpdatePostRequest struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Cover       string   `json:"cover"`
	Images      []string `json:"images"`
	Content     string   `json:"content" validate:"required"`
	Tags        []string `json:"tags"`
}

type RelatedPostsRequest struct {
	PostID string   `json:"postId" validate:"required"`
	TagIDs []string `json:"tagIds" validate:"required,min=1"`
	Take   int      `json:"take"`
}

type CreateNoteRequest struct {
	Content string   `json:"content" validate:"required"`
	Images  []string `json:"images"`
}

type CreateTagRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image"`
	Password string `json:"password" validate:"required,min=8"`
}

type UpdateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Image string `json:"image"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type SignInResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type CreateCommentRequest struct {
	PostID  string `json:"postId" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type CreateBookmarkRequest struct {
	PostID  string `json:"postId" validate:"required"`
	GuestID string `json:"guestId"`
}

type RegisterDeviceRequest struct {
	Token string `json:"token" validate:"required"`
}

// InteractionRequest is the body of both guest and user interaction posts.
// GuestID arrives as the client-generated identifier; handlers compose the
// stored guest key from it and the requester address.
type InteractionRequest struct {
	Type     models.InteractionType `json:"type" validate:"required,oneof=VIEW LIKE UNLIKE SHARE"`
	TargetID string                 `json:"targetId" validate:"required"`
	GuestID  string                 `json:"guestId"`
}
