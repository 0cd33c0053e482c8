// Package handlers implements the HTTP surface of the marketplace service.
package handlers

import (
	"github.com/gin-gonic/gin"

	"karigar-backend/middleware"
	"karigar-backend/storage"
	"karigar-backend/store"
	"karigar-backend/utils"
)

// API bundles the dependencies the handlers need.
type API struct {
	Store    store.Store
	Uploader storage.Uploader
	Tokens   *utils.TokenService
}

func New(s store.Store, uploader storage.Uploader, tokens *utils.TokenService) *API {
	return &API{Store: s, Uploader: uploader, Tokens: tokens}
}

// RegisterRoutes wires every endpoint onto the router. Paths are fixed; the
// deployed frontends depend on them.
func (a *API) RegisterRoutes(r *gin.Engine) {
	r.GET("/", a.Health)

	// Products
	r.POST("/upload", a.Upload)
	r.POST("/addproduct", a.AddProduct)
	r.POST("/removeproduct", a.RemoveProduct)
	r.GET("/allproducts", a.AllProducts)
	r.GET("/popularproducts", a.PopularProducts)
	r.GET("/product/:id", a.ProductByID)

	// Users
	r.POST("/signup", a.Signup)
	r.POST("/login", a.Login)

	// Work marketplace (public part)
	r.GET("/project/:id", a.ProjectByID)
	r.DELETE("/delete-project/:id", a.DeleteProject)

	// Bookings
	r.POST("/bookWorker", a.BookWorker)
	r.GET("/bookings", a.Bookings)

	auth := r.Group("/", middleware.FetchUser(a.Tokens))
	{
		// Cart
		auth.POST("/addtocart", a.AddToCart)
		auth.POST("/removefromcart", a.RemoveFromCart)
		auth.POST("/getcart", a.GetCart)

		// Work marketplace
		auth.POST("/postWork", a.PostWork)
		auth.GET("/allWorks", a.AllWorks)
		auth.GET("/my-projects", a.MyProjects)
		auth.POST("/proposal", a.SubmitProposal)
	}
}
