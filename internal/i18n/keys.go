// internal/i18n/keys.go
package i18n

const (
	KeyAuthRequired      = "auth.required"
	KeyAuthInvalidToken  = "auth.invalid_token"
	KeyAuthTokenExpired  = "auth.token_expired"
	KeyAuthLoginFailed   = "auth.login_failed"
	KeyAdminAccessDenied = "admin.access_denied"

	KeyValidationInvalid = "validation.invalid"

	KeyProductCreated  = "product.created"
	KeyProductUpdated  = "product.updated"
	KeyProductDeleted  = "product.deleted"
	KeyProductNotFound = "product.not_found"
	KeySlugTaken       = "product.slug_taken"

	KeyCategoryCreated  = "category.created"
	KeyCategoryUpdated  = "category.updated"
	KeyCategoryDeleted  = "category.deleted"
	KeyCategoryNotFound = "category.not_found"

	KeyInquiryReceived = "inquiry.received"
	KeyInquiryUpdated  = "inquiry.updated"
	KeyInquiryDeleted  = "inquiry.deleted"
	KeyInquiryNotFound = "inquiry.not_found"

	KeyFavoriteAdded   = "favorite.added"
	KeyFavoriteRemoved = "favorite.removed"

	KeyTestimonialSaved   = "testimonial.saved"
	KeyTestimonialDeleted = "testimonial.deleted"

	KeyPageSaved    = "page.saved"
	KeyPageDeleted  = "page.deleted"
	KeyPageNotFound = "page.not_found"

	KeyMediaUploaded     = "media.uploaded"
	KeyMediaDeleted      = "media.deleted"
	KeyFileUploadFailed  = "media.upload_failed"
	KeyFileUploadSuccess = "media.upload_success"

	KeySeoUpdated = "seo.updated"
)
