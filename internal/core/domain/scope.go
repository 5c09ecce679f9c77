package domain

// consentScopes maps each consent type to the resource types it may authorize.
// The table is closed: consent types not present here authorize nothing.
var consentScopes = map[ConsentType]map[ResourceType]struct{}{
	ConsentTypeAccountInformation: {
		ResourceTypeAccount:     {},
		ResourceTypeBalance:     {},
		ResourceTypeTransaction: {},
	},
	ConsentTypePaymentInitiation: {
		ResourceTypePayment: {},
	},
	ConsentTypeFundsConfirmation: {
		ResourceTypeFundsConfirmation: {},
	},
	ConsentTypeCardInformation: {
		ResourceTypeCard:            {},
		ResourceTypeCardBalance:     {},
		ResourceTypeCardTransaction: {},
	},
}

// AllowsResource reports whether a consent of this type may authorize access
// to the given resource type. Pure and total: unknown types deny.
func (t ConsentType) AllowsResource(r ResourceType) bool {
	allowed, ok := consentScopes[t]
	if !ok {
		return false
	}
	_, ok = allowed[r]
	return ok
}
