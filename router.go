package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/figliolo/bar-client/config"
	"github.com/figliolo/bar-client/controllers"
	"github.com/figliolo/bar-client/middleware"
	"github.com/figliolo/bar-client/stores"
)

// allRoles is the full role set the ordering service issues.
var allRoles = []string{"admin", "terminale", "prof", "segreteria", "paninaro", "studente", "gestore"}

// setupRouter wires every view route with the metadata the navigation
// guard evaluates. The route table mirrors the browser UI's navigation.
func setupRouter(
	cfg *config.Config,
	turni *stores.TurnoStore,
	auth *stores.AuthStore,
	carts *stores.CartStore,
	products *stores.ProductsStore,
	orders *stores.OrdersStore,
	classCarts *stores.ClassCartStore,
	qrs *stores.QRStore,
	gestioni *stores.GestioniStore,
) *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.UIOrigin}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	authController := &controllers.AuthController{Auth: auth, Carts: carts, Turni: turni}
	turnoController := &controllers.TurnoController{Turni: turni}
	cartController := &controllers.CartController{Carts: carts}
	productController := &controllers.ProductController{Products: products}
	orderController := &controllers.OrderController{Orders: orders}
	classCartController := &controllers.ClassCartController{ClassCarts: classCarts}
	qrController := &controllers.QRController{QRs: qrs}
	gestioneController := &controllers.GestioneController{Gestioni: gestioni}
	reportController := &controllers.ReportController{Orders: orders}

	guard := func(meta middleware.RouteMeta) gin.HandlerFunc {
		return middleware.Guard(meta, turni, auth)
	}

	home := middleware.RouteMeta{RequiresAuth: true, Roles: allRoles}
	carrello := middleware.RouteMeta{RequiresTurno: true, RequiresAuth: true, Roles: allRoles}
	qr := middleware.RouteMeta{RequiresTurno: true, RequiresAuth: true, Roles: []string{"admin", "prof", "segreteria", "paninaro"}}
	gestione := middleware.RouteMeta{RequiresAuth: true, Roles: []string{"admin", "gestore"}}
	admin := middleware.RouteMeta{RequiresAuth: true, Roles: []string{"admin"}}

	router.GET("/health", healthCheck)
	router.GET("/", guard(home), authController.Home)
	router.GET(stores.LoginPath, authController.Login)

	api := router.Group("/api")
	{
		api.GET("/session", authController.Session)
		api.POST("/logout", authController.Logout)

		api.GET("/turni", turnoController.List)
		api.POST("/turni/select", turnoController.Select)

		// The catalog is browsable without authentication
		api.GET("/prodotti", productController.List)
		api.GET("/prodotti/:id", productController.Get)

		cart := api.Group("/carrello", guard(carrello))
		{
			cart.GET("", cartController.Show)
			cart.POST("/items", cartController.AddItem)
			cart.DELETE("/items/:id", cartController.RemoveItem)
			cart.DELETE("", cartController.Clear)
			cart.POST("/conferma", cartController.Confirm)
			cart.POST("/sync", cartController.Sync)
		}

		api.GET("/qr", guard(qr), qrController.Get)

		classe := api.Group("/classe", guard(carrello))
		{
			classe.GET("/ordine", classCartController.Today)
			classe.PATCH("/conferma/:id", classCartController.ConfirmMember)
			classe.PUT("/conferma", classCartController.ConfirmClass)
		}

		ordinazioni := api.Group("/ordinazioni", guard(gestione))
		{
			ordinazioni.GET("", orderController.ClassOrders)
			ordinazioni.GET("/prof", orderController.ProfOrders)
			ordinazioni.POST("/data", orderController.SetDate)
			ordinazioni.PUT("/classi/:classe/turno/:n/prepara", orderController.PrepareOrder)
			ordinazioni.PUT("/prodotti/:id/prepara", orderController.PrepareProduct)
		}

		gestioniGroup := api.Group("/gestioni", guard(gestione))
		{
			gestioniGroup.GET("", gestioneController.List)
			gestioniGroup.GET("/:id", gestioneController.Get)
			gestioniGroup.POST("", gestioneController.Create)
			gestioniGroup.PUT("/:id", gestioneController.Update)
			gestioniGroup.DELETE("/:id", gestioneController.Delete)
			gestioniGroup.GET("/:id/utenti", gestioneController.Users)
			gestioniGroup.POST("/:id/utenti", gestioneController.AddUser)
			gestioniGroup.DELETE("/:id/utenti/:utenteId", gestioneController.RemoveUser)
		}

		api.GET("/reports/ordinazioni", guard(gestione), reportController.ClassOrdersExport)

		api.GET("/utenti/:id", guard(admin), orderController.User)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Bar client gateway is running",
	})
}
