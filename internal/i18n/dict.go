package i18n

import "github.com/agrimercato/marketplace-client/internal/core/domain"

// dictionaries is the full static text table, keyed by language then by
// flat dotted key.
var dictionaries = map[domain.Language]map[string]string{
	domain.LanguageItalian: {
		// Common
		"welcome":       "Benvenuto",
		"email":         "Email",
		"password":      "Password",
		"login":         "Accedi",
		"logout":        "Esci",
		"language":      "Lingua",
		"role":          "Ruolo",
		"phone":         "Telefono",
		"activeAccount": "Account attivo",
		"yes":           "Sì",
		"no":            "No",
		"home":          "Home",
		"search":        "Cerca",
		"settings":      "Impostazioni",
		"account":       "Account",
		"guestUser":     "Utente Ospite",
		"profile":       "Profilo",

		// User info
		"userInfo": "Informazioni Utente",

		// Language selector
		"selectLanguage":  "Seleziona lingua",
		"italian":         "Italiano",
		"english":         "Inglese",
		"languageUpdated": "Lingua aggiornata con successo",

		// Login form
		"loginToAccount": "Accedi al tuo account",
		"loggingIn":      "Accesso in corso...",

		// Role-based content
		"availableFunctionality": "Funzionalità Disponibili",
		"adminPanel":             "Pannello Amministrazione",
		"salesPanel":             "Pannello Vendita",
		"purchasePanel":          "Pannello Acquisti",
		"restaurantPanel":        "Pannello Ristorante",
		"eventsPanel":            "Pannello Eventi",
		"currentRole":            "Ruolo corrente",

		// Settings / profile pages
		"settingsPageTitle":   "Impostazioni",
		"generalSettings":     "Impostazioni Generali",
		"profilePageTitle":    "Profilo",
		"personalInfo":        "Informazioni Personali",
		"currentLanguage":     "Lingua attuale",
		"saveChanges":         "Salva modifiche",
		"settingsSaved":       "Impostazioni salvate con successo",

		// Roles
		"roles.admin":            "Amministratore",
		"roles.farmer":           "Agricoltore",
		"roles.consumer":         "Consumatore",
		"roles.restaurant_owner": "Proprietario Ristorante",
		"roles.workshop_host":    "Organizzatore Workshop",
		"roles.event_organizer":  "Organizzatore Eventi",

		// Role descriptions
		"roleDescriptions.admin":            "Amministratore del sistema con accesso completo",
		"roleDescriptions.farmer":           "Produttore agricolo che vende direttamente i propri prodotti",
		"roleDescriptions.consumer":         "Utente finale che acquista prodotti dal mercato agricolo",
		"roleDescriptions.restaurant_owner": "Proprietario di ristorante che acquista ingredienti freschi",
		"roleDescriptions.workshop_host":    "Organizzatore di workshop ed eventi educativi",
		"roleDescriptions.event_organizer":  "Organizzatore di eventi e manifestazioni del mercato",

		// Errors
		"errors.loginFailed":        "Errore durante l'accesso",
		"errors.invalidCredentials": "Email o password non corretti",
		"errors.networkError":       "Errore di rete",
	},

	domain.LanguageEnglish: {
		// Common
		"welcome":       "Welcome",
		"email":         "Email",
		"password":      "Password",
		"login":         "Login",
		"logout":        "Logout",
		"language":      "Language",
		"role":          "Role",
		"phone":         "Phone",
		"activeAccount": "Active account",
		"yes":           "Yes",
		"no":            "No",
		"home":          "Home",
		"search":        "Search",
		"settings":      "Settings",
		"account":       "Account",
		"guestUser":     "Guest User",
		"profile":       "Profile",

		// User info
		"userInfo": "User Information",

		// Language selector
		"selectLanguage":  "Select language",
		"italian":         "Italian",
		"english":         "English",
		"languageUpdated": "Language updated successfully",

		// Login form
		"loginToAccount": "Login to your account",
		"loggingIn":      "Logging in...",

		// Role-based content
		"availableFunctionality": "Available Functionality",
		"adminPanel":             "Administration Panel",
		"salesPanel":             "Sales Panel",
		"purchasePanel":          "Purchase Panel",
		"restaurantPanel":        "Restaurant Panel",
		"eventsPanel":            "Events Panel",
		"currentRole":            "Current role",

		// Settings / profile pages
		"settingsPageTitle":   "Settings",
		"generalSettings":     "General Settings",
		"profilePageTitle":    "Profile",
		"personalInfo":        "Personal Information",
		"currentLanguage":     "Current language",
		"saveChanges":         "Save changes",
		"settingsSaved":       "Settings saved successfully",

		// Roles
		"roles.admin":            "Administrator",
		"roles.farmer":           "Farmer",
		"roles.consumer":         "Consumer",
		"roles.restaurant_owner": "Restaurant Owner",
		"roles.workshop_host":    "Workshop Host",
		"roles.event_organizer":  "Event Organizer",

		// Role descriptions
		"roleDescriptions.admin":            "System administrator with full access",
		"roleDescriptions.farmer":           "Agricultural producer selling their own products directly",
		"roleDescriptions.consumer":         "End user purchasing products from the farmers' market",
		"roleDescriptions.restaurant_owner": "Restaurant owner buying fresh ingredients",
		"roleDescriptions.workshop_host":    "Host of workshops and educational events",
		"roleDescriptions.event_organizer":  "Organizer of market events and activities",

		// Errors
		"errors.loginFailed":        "Login failed",
		"errors.invalidCredentials": "Invalid credentials",
		"errors.networkError":       "Network error",
	},
}
