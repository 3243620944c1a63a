package image

type Image struct{}
