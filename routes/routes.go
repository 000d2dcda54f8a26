package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"anonbox/auth"
	"anonbox/controllers"
	"anonbox/handlers"
	"anonbox/middleware"
	"anonbox/models"
	"anonbox/profiles"
	"anonbox/storage"
)

// App carries the wired services the router hands to handlers.
type App struct {
	Config     models.Config
	Store      *storage.Store
	Tokens     *auth.TokenService
	Authorizer *auth.Authorizer
	Profiles   *profiles.Loader
	Hub        *controllers.Hub
}

func Register(r *gin.Engine, app App) {
	r.StaticFile("/anonbox.css", "./static/css/anonbox.css")

	session := &controllers.SessionController{
		Authorizer: app.Authorizer,
		Tokens:     app.Tokens,
		Duration:   app.Config.SessionDuration,
	}
	signup := &controllers.SignupController{Users: app.Store, Profiles: app.Profiles}
	send := &controllers.SendController{Messages: app.Store, Profiles: app.Profiles, Hub: app.Hub}
	sendPage := &handlers.SendToPage{Profiles: app.Profiles}
	inboxPage := &handlers.InboxPage{Messages: app.Store}

	r.GET("/", handlers.Greeter)
	r.POST("/auth", session.Login)
	r.GET("/create", handlers.CreatePage)
	r.POST("/signup", signup.Signup)

	r.GET("/to/:username", sendPage.Show)
	r.GET("/to/:username/compose", send.Compose)
	r.POST("/to/:username/send",
		middleware.SendLimiter(app.Config.SendInterval, app.Config.SendBurst),
		send.SendMessage)

	authed := r.Group("/").Use(middleware.AuthMiddleware(app.Tokens))
	{
		authed.GET("/inbox", inboxPage.Show)
		authed.GET("/ws/inbox", app.Hub.InboxSocket)
		authed.POST("/logout", session.Logout)
	}

	// JSON collaborators. Same process by default, but callers reach them
	// through configured URLs so they can live elsewhere.
	authAPI := &controllers.AuthAPI{Users: app.Store}
	userAPI := &controllers.UserAPI{Users: app.Store}

	api := r.Group("/api")
	api.Use(cors.Default())
	{
		api.POST("/authorize", authAPI.Authorize)
		api.GET("/users/:username", userAPI.GetUser)
	}
}
