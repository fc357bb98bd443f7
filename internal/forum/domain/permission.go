package domain

import "slices"

// Forum permission names.
const (
	PermVote                = "vote"
	PermUpdateThread        = "update_thread"
	PermFollowThread        = "follow_thread"
	PermUnfollowThread      = "unfollow_thread"
	PermUpdateComment       = "update_comment"
	PermCreateSubComment    = "create_sub_comment"
	PermUnvote              = "unvote"
	PermCreateThread        = "create_thread"
	PermFollowCommentable   = "follow_commentable"
	PermUnfollowCommentable = "unfollow_commentable"
	PermCreateComment       = "create_comment"

	PermEditContent     = "edit_content"
	PermDeleteThread    = "delete_thread"
	PermOpencloseThread = "openclose_thread"
	PermEndorseComment  = "endorse_comment"
	PermDeleteComment   = "delete_comment"
	PermSeeAllCohorts   = "see_all_cohorts"

	PermManageModerator = "manage_moderator"
)

// StudentPermissions are granted directly to the Student role.
func StudentPermissions() []string {
	return []string{
		PermVote,
		PermUpdateThread,
		PermFollowThread,
		PermUnfollowThread,
		PermUpdateComment,
		PermCreateSubComment,
		PermUnvote,
		PermCreateThread,
		PermFollowCommentable,
		PermUnfollowCommentable,
		PermCreateComment,
	}
}

// ModeratorPermissions are granted directly to the Moderator role, on top of
// what it inherits from Student.
func ModeratorPermissions() []string {
	return []string{
		PermEditContent,
		PermDeleteThread,
		PermOpencloseThread,
		PermEndorseComment,
		PermDeleteComment,
		PermSeeAllCohorts,
	}
}

// AdministratorPermissions are granted directly to the Administrator role.
func AdministratorPermissions() []string {
	return []string{PermManageModerator}
}

// IsPermission reports whether name belongs to the forum permission vocabulary.
func IsPermission(name string) bool {
	for _, set := range [][]string{StudentPermissions(), ModeratorPermissions(), AdministratorPermissions()} {
		if slices.Contains(set, name) {
			return true
		}
	}
	return false
}
