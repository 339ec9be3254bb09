package impact

// EcoTips is the fixed tip rotation served on the tips endpoint
var EcoTips = []string{
	"Buying local products reduces transport emissions.",
	"Second-hand shopping saves resources.",
	"Reusable items help cut plastic waste.",
	"Energy-efficient products save CO2.",
}

// NextTip returns the tip for a user who has logged purchaseCount purchases
func NextTip(purchaseCount int) string {
	if purchaseCount < 0 {
		purchaseCount = 0
	}
	return EcoTips[purchaseCount%len(EcoTips)]
}
