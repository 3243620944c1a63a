package admin

type Admin struct{}
