package i18n

var tables = map[string]*Strings{
	"fr": {
		Lang:   "fr",
		Locale: "fr_FR",

		SiteName:        "BattleCorp",
		Tagline:         "Prenez le contrôle de votre corporation",
		HomeTitle:       "BattleCorp, le jeu de stratégie corporatiste",
		HomeDescription: "Dirigez votre corporation, forgez des alliances et dominez le marché dans BattleCorp, le jeu de stratégie massivement multijoueur.",
		PlayTitle:       "Jouer à BattleCorp",
		AuthTitle:       "Connexion à BattleCorp",
		TermsTitle:      "Conditions générales d'utilisation",
		PrivacyTitle:    "Politique de confidentialité",
		CookiesTitle:    "Politique de cookies",
		NotFoundHeading:  "Page introuvable",
		NotFoundBody:     "La page demandée n'existe pas ou a été déplacée.",
		LegalBoilerplate: "Ce document s'applique à l'utilisation du site et du jeu BattleCorp édités par BadMarines Studio. Pour toute question, contactez le support.",

		LoginHeading:         "Connexion",
		RegisterHeading:      "Créer un compte",
		UsernameLabel:        "Nom d'utilisateur",
		UsernameOrEmailLabel: "Nom d'utilisateur ou email",
		EmailLabel:           "Adresse email",
		PasswordLabel:        "Mot de passe",
		PasswordConfirmLabel: "Confirmez le mot de passe",
		LoginButton:          "Se connecter",
		RegisterButton:       "S'inscrire",
		LogoutButton:         "Se déconnecter",
		ForgotPasswordLink:   "Mot de passe oublié ?",

		ResetRequestHeading: "Réinitialiser le mot de passe",
		ResetRequestSent:    "Si un compte existe pour cette adresse, un email de réinitialisation vient d'être envoyé.",
		ResetConfirmHeading: "Choisissez un nouveau mot de passe",
		ResetConfirmButton:  "Changer le mot de passe",
		ResetLinkInvalid:    "Ce lien de réinitialisation est invalide ou a expiré.",

		EmailValidated:       "Votre adresse email est validée. Vous pouvez vous connecter.",
		EmailValidationError: "Ce lien de validation est invalide ou a expiré.",

		AccountHeading:        "Mon compte",
		ChangeEmailHeading:    "Changer d'adresse email",
		ChangePasswordHeading: "Changer de mot de passe",
		CurrentPasswordLabel:  "Mot de passe actuel",
		NewPasswordLabel:      "Nouveau mot de passe",
		DeleteAccountHeading:  "Supprimer le compte",
		DeleteAccountWarning:  "Cette action est définitive. Votre corporation et votre progression seront perdues.",
		SaveButton:            "Enregistrer",
		DeleteButton:          "Supprimer",

		Errors: map[string]string{
			"Created account":           "Votre compte n'est pas encore validé. Vérifiez votre boîte mail.",
			"Banned account":            "Ce compte a été banni.",
			"Disabled account":          "Ce compte a été désactivé.",
			"InvalidCredentials":        "Identifiants incorrects.",
			"PasswordErrorMinLength":    "Le mot de passe doit contenir au moins 8 caractères.",
			"PasswordErrorTypes":        "Le mot de passe doit combiner au moins 3 types de caractères (minuscules, majuscules, chiffres, caractères spéciaux).",
			"PasswordErrorMismatch":     "Les deux mots de passe ne correspondent pas.",
			"EmailErrorInvalid":         "Adresse email invalide.",
			"EmailErrorForbiddenDomain": "Ce fournisseur d'adresses email n'est pas accepté.",
			"UsernameErrorInvalid":      "Le nom d'utilisateur doit contenir de 3 à 30 caractères alphanumériques.",
			"Unreachable":               "Le serveur est injoignable. Réessayez dans quelques instants.",
			"Generic":                   "Une erreur est survenue. Réessayez dans quelques instants.",
			"RegisterSuccess":           "Compte créé. Consultez votre boîte mail pour valider votre adresse.",
			"PasswordResetSuccess":      "Mot de passe changé. Vous pouvez vous connecter.",
			"EmailChangeSuccess":        "Adresse email mise à jour.",
			"PasswordChangeSuccess":     "Mot de passe mis à jour.",
		},
	},
	"en": {
		Lang:   "en",
		Locale: "en_US",

		SiteName:        "BattleCorp",
		Tagline:         "Take control of your corporation",
		HomeTitle:       "BattleCorp, the corporate strategy game",
		HomeDescription: "Run your corporation, forge alliances and dominate the market in BattleCorp, the massively multiplayer strategy game.",
		PlayTitle:       "Play BattleCorp",
		AuthTitle:       "Sign in to BattleCorp",
		TermsTitle:      "Terms of service",
		PrivacyTitle:    "Privacy policy",
		CookiesTitle:    "Cookie policy",
		NotFoundHeading:  "Page not found",
		NotFoundBody:     "The page you requested does not exist or has moved.",
		LegalBoilerplate: "This document applies to the use of the BattleCorp site and game published by BadMarines Studio. For any question, contact support.",

		LoginHeading:         "Sign in",
		RegisterHeading:      "Create an account",
		UsernameLabel:        "Username",
		UsernameOrEmailLabel: "Username or email",
		EmailLabel:           "Email address",
		PasswordLabel:        "Password",
		PasswordConfirmLabel: "Confirm password",
		LoginButton:          "Sign in",
		RegisterButton:       "Sign up",
		LogoutButton:         "Sign out",
		ForgotPasswordLink:   "Forgot your password?",

		ResetRequestHeading: "Reset your password",
		ResetRequestSent:    "If an account exists for this address, a reset email is on its way.",
		ResetConfirmHeading: "Choose a new password",
		ResetConfirmButton:  "Change password",
		ResetLinkInvalid:    "This reset link is invalid or has expired.",

		EmailValidated:       "Your email address is validated. You can now sign in.",
		EmailValidationError: "This validation link is invalid or has expired.",

		AccountHeading:        "My account",
		ChangeEmailHeading:    "Change email address",
		ChangePasswordHeading: "Change password",
		CurrentPasswordLabel:  "Current password",
		NewPasswordLabel:      "New password",
		DeleteAccountHeading:  "Delete account",
		DeleteAccountWarning:  "This action is permanent. Your corporation and progress will be lost.",
		SaveButton:            "Save",
		DeleteButton:          "Delete",

		Errors: map[string]string{
			"Created account":           "Your account is not validated yet. Check your mailbox.",
			"Banned account":            "This account has been banned.",
			"Disabled account":          "This account has been disabled.",
			"InvalidCredentials":        "Incorrect credentials.",
			"PasswordErrorMinLength":    "The password must be at least 8 characters long.",
			"PasswordErrorTypes":        "The password must combine at least 3 character types (lowercase, uppercase, digits, special characters).",
			"PasswordErrorMismatch":     "The two passwords do not match.",
			"EmailErrorInvalid":         "Invalid email address.",
			"EmailErrorForbiddenDomain": "This email provider is not accepted.",
			"UsernameErrorInvalid":      "The username must be 3 to 30 alphanumeric characters.",
			"Unreachable":               "The server cannot be reached. Please try again shortly.",
			"Generic":                   "Something went wrong. Please try again shortly.",
			"RegisterSuccess":           "Account created. Check your mailbox to validate your address.",
			"PasswordResetSuccess":      "Password changed. You can now sign in.",
			"EmailChangeSuccess":        "Email address updated.",
			"PasswordChangeSuccess":     "Password updated.",
		},
	},
}
