package routes

import (
	"aventura_tours/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInstallments = "/installments"
	PathReservations = "/reservations"
	PathPolicies     = "/cancellation-policies"
	PathJobs         = "/jobs"
)

func addTourBillingRoutes(rg *gin.RouterGroup, installmentHandler *handlers.InstallmentHandler, policyHandler *handlers.CancellationPolicyHandler) {
	installments := rg.Group(PathInstallments)
	{
		installments.POST("", installmentHandler.CreateInstallment)
		installments.GET("/:id", installmentHandler.GetInstallment)
		installments.PUT("/:id", installmentHandler.UpdateInstallment)
		installments.DELETE("/:id", installmentHandler.DeleteInstallment)
		installments.PATCH("/:id/pay", installmentHandler.PayInstallment)
		installments.PATCH("/:id/cancel", installmentHandler.CancelInstallment)
		installments.GET("/:id/total-due", installmentHandler.GetTotalDue)
	}

	reservations := rg.Group(PathReservations)
	{
		reservations.GET("/:reservation_id/installments", installmentHandler.ListReservationInstallments)
	}

	policies := rg.Group(PathPolicies)
	{
		policies.POST("", policyHandler.CreatePolicy)
		policies.GET("", policyHandler.ListPolicies)
		policies.GET("/recommended", policyHandler.RecommendPolicy)
		policies.GET("/:id", policyHandler.GetPolicy)
		policies.POST("/:id/refund", policyHandler.QuoteRefund)
	}

	jobs := rg.Group(PathJobs)
	{
		jobs.POST("/overdue-sweep", installmentHandler.RunOverdueSweep)
		jobs.POST("/reminders", installmentHandler.RunReminders)
	}
}
