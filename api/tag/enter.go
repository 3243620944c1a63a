package tag

type Tag struct{}
