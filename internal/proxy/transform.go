package proxy

import (
	"strings"

	"kambel/internal/content"
)

// reshapeBlog decorates authority blog posts with the presentation extras
// the front-end expects.
func reshapeBlog(posts []content.BlogPost) []content.BlogEntry {
	entries := []content.BlogEntry{}
	for _, post := range posts {
		entry := content.BlogEntry{
			BlogPost: post,
			Icon:     content.DefaultBlogIcon,
			Tags:     []string{},
		}
		if entry.Author == "" {
			entry.Author = content.BlogTeamAuthor
		}
		if entry.Category != "" {
			entry.Tags = append(entry.Tags, strings.ToLower(entry.Category))
		}
		entries = append(entries, entry)
	}
	return entries
}

// reshapeMasterclasses flattens the authority split into display sessions,
// filling the session time and defaulting price and capacity the way the
// front-end assumes.
func reshapeMasterclasses(list content.MasterclassList) content.MasterclassSessions {
	sessions := content.MasterclassSessions{
		Upcoming: reshapeSessions(list.Upcoming),
		Previous: reshapeSessions(list.Previous),
	}
	return sessions
}

func reshapeSessions(classes []content.Masterclass) []content.MasterclassSession {
	sessions := []content.MasterclassSession{}
	for _, mc := range classes {
		session := content.MasterclassSession{
			Masterclass: mc,
			Time:        content.DefaultMasterclassTime,
		}
		if session.Instructor == "" {
			session.Instructor = content.DefaultAuthor
		}
		if session.Price == 0 {
			session.Price = content.DefaultMasterclassPrice
		}
		if session.TotalSeats == 0 {
			session.TotalSeats = 30
		}
		if session.CoverImageURL == nil && session.VideoURL != nil {
			if thumb := content.VideoThumbnail(*session.VideoURL); thumb != "" {
				session.CoverImageURL = &thumb
			}
		}
		sessions = append(sessions, session)
	}
	return sessions
}

// findSession locates a session by id across both lists.
func findSession(sessions content.MasterclassSessions, id int64) (content.MasterclassSession, bool) {
	for _, session := range sessions.Upcoming {
		if session.ID == id {
			return session, true
		}
	}
	for _, session := range sessions.Previous {
		if session.ID == id {
			return session, true
		}
	}
	return content.MasterclassSession{}, false
}
