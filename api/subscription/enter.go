package subscription

type Subscription struct{}
