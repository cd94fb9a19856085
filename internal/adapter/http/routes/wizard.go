package routes

import (
	"quoteforge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathWizardSessions = "/wizard/sessions"
	PathQuotes         = "/quotes"
)

func addWizardRoutes(rg *gin.RouterGroup, wizardHandler *handlers.WizardHandler) {
	sessions := rg.Group(PathWizardSessions)
	{
		sessions.POST("", wizardHandler.StartSession)
		sessions.GET("/:session_id", wizardHandler.GetSession)
		sessions.DELETE("/:session_id", wizardHandler.AbandonSession)

		sessions.PUT("/:session_id/features", wizardHandler.SetFeatures)
		sessions.PUT("/:session_id/client", wizardHandler.SetClient)
		sessions.PUT("/:session_id/terms", wizardHandler.SetTerms)

		sessions.POST("/:session_id/items", wizardHandler.AddItem)
		sessions.PUT("/:session_id/items/:index", wizardHandler.UpdateItem)
		sessions.DELETE("/:session_id/items/:index", wizardHandler.RemoveItem)

		sessions.POST("/:session_id/pricing", wizardHandler.RequestPricing)
		sessions.POST("/:session_id/advance", wizardHandler.Advance)
		sessions.POST("/:session_id/retreat", wizardHandler.Retreat)
	}
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("", quoteHandler.ListQuotes)
		quotes.GET("/:id", quoteHandler.GetQuote)
	}
}
