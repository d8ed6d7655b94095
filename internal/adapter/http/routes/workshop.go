package routes

import (
	"bengkel_manager/internal/adapter/http/handlers"
	"bengkel_manager/internal/adapter/http/middleware"
	"bengkel_manager/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth       = "/auth"
	PathTenants    = "/tenants"
	PathTenant     = "/tenant"
	PathCustomers  = "/customers"
	PathSpareparts = "/spareparts"
	PathServices   = "/services"
	PathPayments   = "/payments"
	PathCosts      = "/costs"
	PathReports    = "/reports"
)

type workshopHandlers struct {
	auth      *handlers.AuthHandler
	tenant    *handlers.TenantHandler
	customer  *handlers.CustomerHandler
	sparepart *handlers.SparepartHandler
	order     *handlers.ServiceOrderHandler
	payment   *handlers.PaymentHandler
	cost      *handlers.CostHandler
	report    *handlers.ReportHandler

	authGuard  gin.HandlerFunc
	tenantOnly gin.HandlerFunc
}

func addWorkshopRoutes(rg *gin.RouterGroup, h workshopHandlers) {
	// Public surface: login, registration and workshop sign-up.
	authGroup := rg.Group(PathAuth)
	{
		authGroup.POST("/register", h.auth.Register)
		authGroup.POST("/login", h.auth.Login)
		authGroup.GET("/me", h.authGuard, h.auth.Me)
	}

	rg.POST(PathTenants, h.tenant.Register)

	// Platform administration, super admin only.
	admin := rg.Group(PathTenants, h.authGuard, middleware.RequireRole(entities.RoleSuperAdmin))
	{
		admin.GET("", h.tenant.List)
		admin.PATCH("/:id/status", h.tenant.UpdateStatus)
		admin.PATCH("/:id/package", h.tenant.UpdatePackage)
	}

	// Owner's workshop settings.
	tenant := rg.Group(PathTenant, h.authGuard, h.tenantOnly)
	{
		tenant.GET("", h.tenant.GetSettings)
		tenant.PUT("", middleware.RequireRole(entities.RoleOwner), h.tenant.UpdateSettings)
	}

	customers := rg.Group(PathCustomers, h.authGuard, h.tenantOnly)
	{
		customers.POST("", h.customer.Create)
		customers.GET("", h.customer.List)
		customers.GET("/:id", h.customer.GetByID)
		customers.PUT("/:id", h.customer.Update)
		customers.DELETE("/:id", h.customer.Delete)

		customers.POST("/:id/vehicles", h.customer.AddVehicle)
		customers.GET("/:id/vehicles", h.customer.ListVehicles)
		customers.PUT("/:id/vehicles/:vehicle_id", h.customer.UpdateVehicle)
		customers.DELETE("/:id/vehicles/:vehicle_id", h.customer.DeleteVehicle)
	}

	spareparts := rg.Group(PathSpareparts, h.authGuard, h.tenantOnly)
	{
		spareparts.POST("", h.sparepart.Create)
		spareparts.GET("", h.sparepart.List)
		spareparts.GET("/low-stock", h.sparepart.ListLowStock)
		spareparts.GET("/:id", h.sparepart.GetByID)
		spareparts.PUT("/:id", h.sparepart.Update)
		spareparts.DELETE("/:id", h.sparepart.Delete)
		spareparts.POST("/:id/restock", h.sparepart.Restock)
	}

	services := rg.Group(PathServices, h.authGuard, h.tenantOnly)
	{
		services.POST("", h.order.Create)
		services.GET("", h.order.List)
		services.GET("/:id", h.order.GetByID)
		services.PUT("/:id", h.order.Update)

		services.POST("/:id/payments", h.payment.RecordPayment)
		services.GET("/:id/payments", h.payment.ListByService)
	}

	payments := rg.Group(PathPayments, h.authGuard, h.tenantOnly)
	{
		payments.GET("/:id", h.payment.GetByID)
	}

	costs := rg.Group(PathCosts, h.authGuard, h.tenantOnly)
	{
		costs.POST("", h.cost.Create)
		costs.GET("", h.cost.List)
		costs.PUT("/:id", h.cost.Update)
		costs.DELETE("/:id", h.cost.Delete)
	}

	reports := rg.Group(PathReports, h.authGuard, h.tenantOnly)
	{
		reports.GET("/dashboard", h.report.Dashboard)
		reports.GET("/financial", h.report.Financial)
	}
}
