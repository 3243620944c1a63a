package writer

type Writer struct{}
