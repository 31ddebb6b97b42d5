package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/quizcourse/quizcourse/internal/api/memstore"
	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/config"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/pkg/jwthelper"
)

type AuthStore interface {
	CreateUser(ctx context.Context, req request.RegisterRequest) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
}

type AuthHandler struct {
	conf  *config.StubConfig
	store AuthStore
}

func NewAuthHandler(conf *config.StubConfig, store AuthStore) *AuthHandler {
	return &AuthHandler{
		conf:  conf,
		store: store,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      201      {object}   domain.User
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Router       /users/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.store.CreateUser(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, memstore.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(err))
			return
		}

		err = fmt.Errorf("v1.HandleRegister -> h.store.CreateUser -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// HandleLogin godoc
// @Summary      Login with the OAuth2 password form
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Router       /login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBind(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.login(ctx, req)
}

// HandleLoginJSON is HandleLogin with a JSON body.
func (h *AuthHandler) HandleLoginJSON(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	h.login(ctx, req)
}

func (h *AuthHandler) login(ctx *gin.Context, req request.LoginRequest) {
	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.store.Authenticate(ctx.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, memstore.ErrUserNotFound) || errors.Is(err, memstore.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.login -> h.store.Authenticate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ttl := h.conf.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, ctx.Request.UserAgent(), ttl)
	if err != nil {
		err = fmt.Errorf("v1.login -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
