package article

import (
	"context"
	"fmt"

	"pressroom/internal/domain/entity"
)

const (
	msgWrongFormat    = "Input is in the wrong format."
	msgCannotLoad     = "Cannot load image."
	msgEmptyBody      = "There is nothing in the article body."
	msgTitleNotUnique = "The title is not unique."

	msgTagsParse = "Error parsing tags. Make sure they are in a comma-separated list."

	// The create form shows first-time publishers an example; the update
	// form does not.
	msgTagsParseWithExample = msgTagsParse +
		" (Example: this, is, what, right, looks, like)"
)

func lengthMessage(max int) string {
	return fmt.Sprintf("Length cannot exceed %d characters.", max)
}

func fieldErr(field, message string) error {
	return &entity.ValidationError{Field: field, Message: message}
}

// validate runs the field checks in their fixed order and stops at the first
// failure, so a request reports at most one field error. current is nil for a
// create and the stored article for an update; the two modes differ only in
// where the title is checked and in the tags parse message.
//
// On an update the title and slug checks run last, and the uniqueness lookup
// is skipped entirely when the submitted title matches the stored one.
func (s *Service) validate(ctx context.Context, in Input, current *entity.Article) error {
	if !entity.WithinLength(in.AuthorName, entity.MaxAuthorNameLen) {
		return fieldErr("author_name", lengthMessage(entity.MaxAuthorNameLen))
	}
	if !entity.ValidAuthorName(in.AuthorName) {
		return fieldErr("author_name", msgWrongFormat)
	}

	if !entity.WithinLength(in.AuthorTwitter, entity.MaxAuthorTwitterLen) {
		return fieldErr("author_twitter", lengthMessage(entity.MaxAuthorTwitterLen))
	}

	if in.AuthorFBID != "" && !entity.WithinLength(in.AuthorFBID, entity.MaxAuthorFBIDLen) {
		return fieldErr("author_fbid", lengthMessage(entity.MaxAuthorFBIDLen))
	}

	if current == nil {
		if !entity.WithinLength(in.Title, entity.MaxTitleLen) {
			return fieldErr("title", lengthMessage(entity.MaxTitleLen))
		}
	}

	if !entity.WithinLength(in.Description, entity.MaxDescriptionLen) {
		return fieldErr("description", lengthMessage(entity.MaxDescriptionLen))
	}

	if !entity.WithinLength(in.Image, entity.MaxImageLen) {
		return fieldErr("image", lengthMessage(entity.MaxImageLen))
	}
	if err := s.Images.Check(ctx, in.Image); err != nil {
		return fieldErr("image", msgCannotLoad)
	}

	if !entity.WithinLength(in.Section, entity.MaxSectionLen) {
		return fieldErr("section", lengthMessage(entity.MaxSectionLen))
	}

	if !entity.WithinLength(in.Tags, entity.MaxTagsLen) {
		return fieldErr("tags", lengthMessage(entity.MaxTagsLen))
	}
	if len(entity.SplitTags(in.Tags)) < 2 {
		if current == nil {
			return fieldErr("tags", msgTagsParseWithExample)
		}
		return fieldErr("tags", msgTagsParse)
	}

	if in.Body == "" {
		return fieldErr("body", msgEmptyBody)
	}

	if current == nil {
		return s.checkTitleUnique(ctx, in.Title)
	}

	if !entity.WithinLength(in.Title, entity.MaxTitleLen) {
		return fieldErr("title", lengthMessage(entity.MaxTitleLen))
	}
	if in.Title != current.Title {
		return s.checkTitleUnique(ctx, in.Title)
	}
	return nil
}

func (s *Service) checkTitleUnique(ctx context.Context, title string) error {
	exists, err := s.Repo.ExistsBySlug(ctx, entity.Slugify(title))
	if err != nil {
		return fmt.Errorf("check slug uniqueness: %w", err)
	}
	if exists {
		return fieldErr("title", msgTitleNotUnique)
	}
	return nil
}
