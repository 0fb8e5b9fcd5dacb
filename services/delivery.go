package services

// deliveryWindows are coarse day ranges; the last pincode digit picks one.
// Deterministic and non-authoritative, there is no logistics integration.
var deliveryWindows = [3]string{"2-4", "3-5", "4-6"}

// EstimateDelivery returns a day-range estimate like "2-4 days" for a
// pincode, or "" when no pincode has been entered yet.
func EstimateDelivery(pincode string) string {
	if pincode == "" {
		return ""
	}
	last := pincode[len(pincode)-1]
	if last < '0' || last > '9' {
		return ""
	}
	return deliveryWindows[int(last-'0')%3] + " days"
}
