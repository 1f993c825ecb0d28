package routes

import (
	"github.com/Rakhulsr/go-catalog/app/handlers"
	"github.com/Rakhulsr/go-catalog/app/repositories"
	"github.com/Rakhulsr/go-catalog/app/services"
	"github.com/Rakhulsr/go-catalog/app/utils/renderer"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

func NewRouter(db *gorm.DB) *mux.Router {
	attrRepo := repositories.NewAttributeRepository(db)
	bindingRepo := repositories.NewCategoryAttributeRepository(db)
	valueRepo := repositories.NewProductAttributeRepository(db)
	productRepo := repositories.NewProductRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)

	attributes := services.NewAttributeService(attrRepo, valueRepo, bindingRepo)
	bindings := services.NewCategoryAttributeService(bindingRepo, attrRepo, categoryRepo)
	values := services.NewProductAttributeService(valueRepo, attrRepo, productRepo)
	bulk := services.NewBulkAttributeService(values, productRepo)

	rnd := renderer.New()
	validate := validator.New()

	attributeHandler := handlers.NewAttributeHandler(attributes, rnd, validate)
	categoryHandler := handlers.NewCategoryAttributeHandler(bindings, rnd, validate)
	productHandler := handlers.NewProductAttributeHandler(values, bulk, rnd, validate)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/attributes", attributeHandler.Create).Methods("POST")
	api.HandleFunc("/attributes", attributeHandler.List).Methods("GET")
	api.HandleFunc("/attributes/code/{code}", attributeHandler.GetByCode).Methods("GET")

	api.HandleFunc("/attributes/category/{categoryId}", categoryHandler.List).Methods("GET")
	api.HandleFunc("/attributes/category/{categoryId}", categoryHandler.Assign).Methods("POST")
	api.HandleFunc("/attributes/category/{categoryId}/resolved", categoryHandler.Resolve).Methods("GET")
	api.HandleFunc("/attributes/category/{categoryId}/{attributeId}", categoryHandler.Unassign).Methods("DELETE")

	api.HandleFunc("/attributes/product/{productId}", productHandler.List).Methods("GET")
	api.HandleFunc("/attributes/product/{productId}", productHandler.Set).Methods("POST")
	api.HandleFunc("/attributes/product/{productId}/bulk", productHandler.BulkSet).Methods("POST")
	api.HandleFunc("/attributes/product/{productId}/{attributeId}", productHandler.Remove).Methods("DELETE")

	api.HandleFunc("/attributes/{id}", attributeHandler.Get).Methods("GET")
	api.HandleFunc("/attributes/{id}", attributeHandler.Update).Methods("PATCH")
	api.HandleFunc("/attributes/{id}", attributeHandler.Delete).Methods("DELETE")

	return router
}
