package i18n

// Message keys. Format verbs follow fmt; numbers are localized by the
// printer.
const (
	AppTitle    = "appTitle"
	AppSubtitle = "appSubtitle"

	Ready      = "ready"
	Studying   = "studying"
	Leisure    = "leisure"
	NetBalance = "netBalance"
	Positive   = "positiveHint"
	Negative   = "negativeHint"
	Earned     = "earned"
	Debt       = "debt"
	Loaned     = "loaned"
	Spendable  = "spendable"
	Elapsed    = "elapsed"
	Remaining  = "remaining"
	StartedAt  = "startedAt"

	StudyStarted    = "studyStarted"
	LeisureStarted  = "leisureStarted"
	SessionActive   = "sessionActive"
	NoSession       = "noSession"
	SessionRecover  = "sessionRecovered"
	LeisureFinished = "leisureFinished"
	AlarmDismiss    = "alarmDismiss"

	RequestLoan         = "requestLoan"
	RepaymentRequired   = "repaymentRequired"
	ExceedsDebtLimit    = "exceedsDebtLimit"
	MinimumLoan         = "minimumLoan"
	CannotLoanPositive  = "cannotLoanPositiveBalance"
	Borrowed            = "borrowed"
	ConfirmLoanHint     = "confirmLoanHint"
	NotEnoughLeisure    = "notEnoughLeisure"
	SessionTooShort     = "sessionTooShort"
	EarnedLeisure       = "earnedLeisure"
	DebtPaid            = "debtPaid"
	UsedLeisure         = "usedLeisure"
	LeisureStopped      = "leisureStopped"
	LeisureMinutesToUse = "leisureMinutesToUse"
	UseAll              = "useAll"
	InvalidAmount       = "invalidAmount"

	Settings         = "settings"
	Language         = "language"
	LeisureFactor    = "leisureFactor"
	LoanInterestRate = "loanInterestRate"
	MaxDebtLimit     = "maxDebtLimit"
	SettingsSaved    = "settingsSaved"
	SettingsReset    = "settingsReset"
	InvalidConfig    = "invalidConfig"
	ResetDone        = "resetDone"
	ConfirmWithYes   = "confirmWithYes"
	StorageFallback  = "storageFallback"

	History             = "history"
	NoHistory           = "noHistory"
	HistoryCleared      = "historyCleared"
	CannotClearDebt     = "cannotClearDebt"
	ClearHistoryConfirm = "clearHistoryConfirm"
	StudyEntry          = "studyEntry"
	LeisureEntry        = "leisureEntry"
	LoanEntry           = "loanEntry"
	Factor              = "factor"
	Interest            = "interest"
	Balance             = "balance"
	MinLeisure          = "minLeisure"
	MinUsed             = "minUsed"
	MinBorrowed         = "minBorrowed"
	MinToRepay          = "minToRepay"
	Recovered           = "recovered"

	Week       = "week"
	Total      = "total"
	StudyCol   = "studyColumn"
	LeisureCol = "leisureColumn"

	KeyStop  = "keyStop"
	KeyLeave = "keyLeave"
	KeyAll   = "keyAll"
	KeyEnter = "keyEnter"
	KeyQuit  = "keyQuit"
)

var english = map[string]string{
	AppTitle:    "📖 Study & Play",
	AppSubtitle: "Study to earn play time!",

	Ready:      "Ready",
	Studying:   "📚 Studying...",
	Leisure:    "🎮 Leisure...",
	NetBalance: "Net Balance",
	Positive:   "Positive = play time available",
	Negative:   "Negative = study time owed",
	Earned:     "Earned",
	Debt:       "Debt",
	Loaned:     "Loaned",
	Spendable:  "Available",
	Elapsed:    "Elapsed",
	Remaining:  "Remaining",
	StartedAt:  "Started at",

	StudyStarted:    "📚 Study session started at %s",
	LeisureStarted:  "🎮 Leisure session started: %.1f min",
	SessionActive:   "A %s session is already running",
	NoSession:       "No session running",
	SessionRecover:  "Resumed %s session started at %s",
	LeisureFinished: "⏰ Leisure time is over!",
	AlarmDismiss:    "Press any key to silence the alarm",

	RequestLoan:         "Request Loan",
	RepaymentRequired:   "Repayment required: %.1f min study",
	ExceedsDebtLimit:    "Exceeds debt limit (max %.0f min)",
	MinimumLoan:         "Minimum loan is 1 minute",
	CannotLoanPositive:  "You can't request a loan with a positive balance",
	Borrowed:            "💰 Borrowed %.0f min (%.1f min to repay)",
	ConfirmLoanHint:     "Run again with --yes to take the loan",
	NotEnoughLeisure:    "⚠️ Need at least 1 min (you have %.1f min)",
	SessionTooShort:     "⚠️ Session too short (min 1 min)",
	EarnedLeisure:       "✅ Earned %.1f min leisure",
	DebtPaid:            "(%.1f min debt paid)",
	UsedLeisure:         "🎮 Used %.1f min leisure",
	LeisureStopped:      "🎮 Leisure session stopped",
	LeisureMinutesToUse: "Leisure minutes to use",
	UseAll:              "Use all (%.1f min)",
	InvalidAmount:       "Invalid amount: %s",

	Settings:         "Settings",
	Language:         "Language",
	LeisureFactor:    "Leisure Factor (0.1 - 1.0)",
	LoanInterestRate: "Loan Interest Rate (0%% - 50%%)",
	MaxDebtLimit:     "Max Debt Limit (minutes)",
	SettingsSaved:    "✅ Settings saved successfully",
	SettingsReset:    "🔄 Settings reset to defaults",
	InvalidConfig:    "Invalid settings: %s",
	ResetDone:        "🔄 Balance, history and session reset",
	ConfirmWithYes:   "This cannot be undone. Run again with --yes to confirm",
	StorageFallback:  "⚠️ Storage unavailable, changes will not be kept",

	History:             "History",
	NoHistory:           "No history yet",
	HistoryCleared:      "🗑️ History cleared",
	CannotClearDebt:     "Cannot clear history while you have pending debt",
	ClearHistoryConfirm: "This clears all history. Run again with --yes to confirm",
	StudyEntry:          "Study",
	LeisureEntry:        "Leisure",
	LoanEntry:           "Loan",
	Factor:              "factor",
	Interest:            "interest",
	Balance:             "Balance",
	MinLeisure:          "min leisure",
	MinUsed:             "min used",
	MinBorrowed:         "min borrowed",
	MinToRepay:          "min to repay",
	Recovered:           "recovered",

	Week:       "This week",
	Total:      "Total",
	StudyCol:   "Study",
	LeisureCol: "Leisure",

	KeyStop:  "stop & settle",
	KeyLeave: "leave running",
	KeyAll:   "use all",
	KeyEnter: "start",
	KeyQuit:  "cancel",
}

var spanish = map[string]string{
	AppTitle:    "📖 Estudia & Juega",
	AppSubtitle: "¡Estudia para ganar tiempo de juego!",

	Ready:      "Listo",
	Studying:   "📚 Estudiando...",
	Leisure:    "🎮 Ocio...",
	NetBalance: "Balance Neto",
	Positive:   "Positivo = tiempo de juego disponible",
	Negative:   "Negativo = tiempo de estudio pendiente",
	Earned:     "Ganado",
	Debt:       "Deuda",
	Loaned:     "Prestado",
	Spendable:  "Disponible",
	Elapsed:    "Transcurrido",
	Remaining:  "Restante",
	StartedAt:  "Inicio",

	StudyStarted:    "📚 Sesión de estudio iniciada a las %s",
	LeisureStarted:  "🎮 Sesión de ocio iniciada: %.1f min",
	SessionActive:   "Ya hay una sesión de %s en curso",
	NoSession:       "No hay ninguna sesión en curso",
	SessionRecover:  "Sesión de %s reanudada (inicio %s)",
	LeisureFinished: "⏰ ¡Se acabó el tiempo de ocio!",
	AlarmDismiss:    "Pulsa cualquier tecla para silenciar la alarma",

	RequestLoan:         "Solicitar Préstamo",
	RepaymentRequired:   "Pago requerido: %.1f min estudio",
	ExceedsDebtLimit:    "Excede límite de deuda (máx %.0f min)",
	MinimumLoan:         "El préstamo mínimo es 1 minuto",
	CannotLoanPositive:  "No puedes solicitar un préstamo con balance positivo",
	Borrowed:            "💰 Prestaste %.0f min (%.1f min a pagar)",
	ConfirmLoanHint:     "Vuelve a ejecutar con --yes para tomar el préstamo",
	NotEnoughLeisure:    "⚠️ Necesitas al menos 1 min (tienes %.1f min)",
	SessionTooShort:     "⚠️ Sesión muy corta (mín 1 min)",
	EarnedLeisure:       "✅ Ganaste %.1f min de ocio",
	DebtPaid:            "(%.1f min de deuda pagada)",
	UsedLeisure:         "🎮 Usaste %.1f min de ocio",
	LeisureStopped:      "🎮 Sesión de ocio detenida",
	LeisureMinutesToUse: "Minutos de ocio a usar",
	UseAll:              "Usar todo (%.1f min)",
	InvalidAmount:       "Cantidad no válida: %s",

	Settings:         "Configuración",
	Language:         "Idioma",
	LeisureFactor:    "Factor de Ocio (0.1 - 1.0)",
	LoanInterestRate: "Tasa de Interés (0%% - 50%%)",
	MaxDebtLimit:     "Límite de Deuda (minutos)",
	SettingsSaved:    "✅ Configuración guardada",
	SettingsReset:    "🔄 Configuración restablecida",
	InvalidConfig:    "Configuración no válida: %s",
	ResetDone:        "🔄 Balance, historial y sesión restablecidos",
	ConfirmWithYes:   "No se puede deshacer. Vuelve a ejecutar con --yes para confirmar",
	StorageFallback:  "⚠️ Almacenamiento no disponible, los cambios no se guardarán",

	History:             "Historial",
	NoHistory:           "Sin historial",
	HistoryCleared:      "🗑️ Historial borrado",
	CannotClearDebt:     "No puedes borrar el historial con deuda pendiente",
	ClearHistoryConfirm: "Se borrará todo el historial. Vuelve a ejecutar con --yes para confirmar",
	StudyEntry:          "Estudio",
	LeisureEntry:        "Ocio",
	LoanEntry:           "Préstamo",
	Factor:              "factor",
	Interest:            "interés",
	Balance:             "Balance",
	MinLeisure:          "min ocio",
	MinUsed:             "min usado",
	MinBorrowed:         "min prestado",
	MinToRepay:          "min a pagar",
	Recovered:           "recuperado",

	Week:       "Esta semana",
	Total:      "Total",
	StudyCol:   "Estudio",
	LeisureCol: "Ocio",

	KeyStop:  "detener y liquidar",
	KeyLeave: "dejar en marcha",
	KeyAll:   "usar todo",
	KeyEnter: "empezar",
	KeyQuit:  "cancelar",
}

var french = map[string]string{
	AppTitle:    "📖 Étudie & Joue",
	AppSubtitle: "Étudie pour gagner du temps de jeu !",

	Ready:      "Prêt",
	Studying:   "📚 En étude...",
	Leisure:    "🎮 Loisir...",
	NetBalance: "Solde Net",
	Positive:   "Positif = temps de jeu disponible",
	Negative:   "Négatif = temps d'étude dû",
	Earned:     "Gagné",
	Debt:       "Dette",
	Loaned:     "Emprunté",
	Spendable:  "Disponible",
	Elapsed:    "Écoulé",
	Remaining:  "Restant",
	StartedAt:  "Début",

	StudyStarted:    "📚 Session d'étude commencée à %s",
	LeisureStarted:  "🎮 Session de loisir commencée : %.1f min",
	SessionActive:   "Une session de %s est déjà en cours",
	NoSession:       "Aucune session en cours",
	SessionRecover:  "Session de %s reprise (début %s)",
	LeisureFinished: "⏰ Le temps de loisir est terminé !",
	AlarmDismiss:    "Appuyez sur une touche pour couper l'alarme",

	RequestLoan:         "Demander un Prêt",
	RepaymentRequired:   "Remboursement requis : %.1f min étude",
	ExceedsDebtLimit:    "Dépasse la limite de dette (max %.0f min)",
	MinimumLoan:         "Le prêt minimum est de 1 minute",
	CannotLoanPositive:  "Impossible d'emprunter avec un solde positif",
	Borrowed:            "💰 Emprunté %.0f min (%.1f min à rembourser)",
	ConfirmLoanHint:     "Relancez avec --yes pour emprunter",
	NotEnoughLeisure:    "⚠️ Il faut au moins 1 min (vous avez %.1f min)",
	SessionTooShort:     "⚠️ Session trop courte (min 1 min)",
	EarnedLeisure:       "✅ Gagné %.1f min de loisir",
	DebtPaid:            "(%.1f min de dette payée)",
	UsedLeisure:         "🎮 Utilisé %.1f min de loisir",
	LeisureStopped:      "🎮 Session de loisir arrêtée",
	LeisureMinutesToUse: "Minutes de loisir à utiliser",
	UseAll:              "Tout utiliser (%.1f min)",
	InvalidAmount:       "Montant invalide : %s",

	Settings:         "Paramètres",
	Language:         "Langue",
	LeisureFactor:    "Facteur de Loisir (0.1 - 1.0)",
	LoanInterestRate: "Taux d'Intérêt (0%% - 50%%)",
	MaxDebtLimit:     "Limite de Dette (minutes)",
	SettingsSaved:    "✅ Paramètres sauvegardés",
	SettingsReset:    "🔄 Paramètres réinitialisés",
	InvalidConfig:    "Paramètres invalides : %s",
	ResetDone:        "🔄 Solde, historique et session réinitialisés",
	ConfirmWithYes:   "Action irréversible. Relancez avec --yes pour confirmer",
	StorageFallback:  "⚠️ Stockage indisponible, les changements ne seront pas conservés",

	History:             "Historique",
	NoHistory:           "Pas encore d'historique",
	HistoryCleared:      "🗑️ Historique effacé",
	CannotClearDebt:     "Impossible d'effacer l'historique avec une dette",
	ClearHistoryConfirm: "Tout l'historique sera effacé. Relancez avec --yes pour confirmer",
	StudyEntry:          "Étude",
	LeisureEntry:        "Loisir",
	LoanEntry:           "Prêt",
	Factor:              "facteur",
	Interest:            "intérêt",
	Balance:             "Solde",
	MinLeisure:          "min loisir",
	MinUsed:             "min utilisé",
	MinBorrowed:         "min emprunté",
	MinToRepay:          "min à rembourser",
	Recovered:           "récupéré",

	Week:       "Cette semaine",
	Total:      "Total",
	StudyCol:   "Étude",
	LeisureCol: "Loisir",

	KeyStop:  "arrêter et régler",
	KeyLeave: "laisser tourner",
	KeyAll:   "tout utiliser",
	KeyEnter: "commencer",
	KeyQuit:  "annuler",
}
