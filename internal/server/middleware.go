package server

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	authdomain "github.com/raqamly/console/internal/auth/domain"
	"github.com/raqamly/console/internal/auth/session"
	"github.com/raqamly/console/internal/cache"
	obscontext "github.com/raqamly/console/internal/observability/context"
	userdomain "github.com/raqamly/console/internal/user/domain"
)

const (
	ctxUserKey    = "current_user"
	ctxSessionKey = "current_session"

	profileCacheTTL = 30 * time.Second
)

// Authenticator resolves the session cookie into a user profile and caches
// hot profiles so session resume does not hit the database on every request.
type Authenticator struct {
	sessions *session.Manager
	auth     authdomain.Service
	users    userdomain.Service
	profiles cache.Cache[snowflake.ID, *userdomain.User]
}

func NewAuthenticator(sessions *session.Manager, auth authdomain.Service, users userdomain.Service) *Authenticator {
	return &Authenticator{
		sessions: sessions,
		auth:     auth,
		users:    users,
		profiles: cache.NewTTLCache[snowflake.ID, *userdomain.User](profileCacheTTL),
	}
}

// Required rejects requests without a valid session.
func (a *Authenticator) Required() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := a.sessions.ReadToken(c)
		if token == "" {
			abortWithError(c, authdomain.ErrInvalidSession)
			return
		}

		sess, err := a.auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			abortWithError(c, err)
			return
		}

		profile, err := a.profile(c, sess.IdentityID)
		if err != nil {
			abortWithError(c, err)
			return
		}

		ctx := obscontext.WithUserID(c.Request.Context(), profile.ID.String())
		c.Request = c.Request.WithContext(ctx)
		c.Set(ctxUserKey, profile)
		c.Set(ctxSessionKey, sess)
		c.Next()
	}
}

func (a *Authenticator) profile(c *gin.Context, id snowflake.ID) (*userdomain.User, error) {
	if profile, ok := a.profiles.Get(id); ok {
		return profile, nil
	}
	profile, err := a.users.Get(c.Request.Context(), id)
	if err != nil {
		return nil, err
	}
	a.profiles.Set(id, profile)
	return profile, nil
}

// Invalidate drops a cached profile after it changes.
func (a *Authenticator) Invalidate(id snowflake.ID) {
	a.profiles.Delete(id)
}

func currentUser(c *gin.Context) *userdomain.User {
	v, ok := c.Get(ctxUserKey)
	if !ok {
		return nil
	}
	user, _ := v.(*userdomain.User)
	return user
}

func currentSession(c *gin.Context) *authdomain.Session {
	v, ok := c.Get(ctxSessionKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*authdomain.Session)
	return sess
}
