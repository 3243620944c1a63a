package api

import (
	"paperly/api/admin"
	"paperly/api/article"
	"paperly/api/category"
	"paperly/api/comment"
	"paperly/api/editor"
	"paperly/api/image"
	"paperly/api/subscription"
	"paperly/api/system"
	"paperly/api/tag"
	"paperly/api/user"
	"paperly/api/writer"
)

type AppGroup struct {
	SystemApi       system.System
	UserApi         user.User
	ArticleApi      article.Article
	WriterApi       writer.Writer
	EditorApi       editor.Editor
	AdminApi        admin.Admin
	CategoryApi     category.Category
	TagApi          tag.Tag
	CommentApi      comment.Comment
	SubscriptionApi subscription.Subscription
	ImageApi        image.Image
}

var AppGroupApp = new(AppGroup)
