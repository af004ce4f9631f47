package operations

// Commands returns every procedure-backed operation descriptor. The
// slice is built once; descriptors are immutable.
func Commands() []*Operation {
	var all []*Operation
	all = append(all, clientOperations...)
	all = append(all, personOperations...)
	all = append(all, calendarOperations...)
	all = append(all, classOperations...)
	all = append(all, securityOperations...)
	all = append(all, bondOperations...)
	all = append(all, securityParamOperations...)
	all = append(all, tradeCreationOperations...)
	all = append(all, scheduleOperations...)
	all = append(all, couponOperations...)
	all = append(all, extraParamOperations...)
	all = append(all, accruedIntOperations...)
	all = append(all, priceLimitOperations...)
	all = append(all, faceValueOperations...)
	all = append(all, auctionOperations...)
	all = append(all, settleCodeOperations...)
	all = append(all, tradeAccountOperations...)
	all = append(all, groupOperations...)
	return all
}
