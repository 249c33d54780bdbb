package normalizer

import (
	"events-server/models/spotify"
	"events-server/models/view"
)

func ArtistProfile(a *spotify.Artist) view.ArtistProfile {
	profile := view.ArtistProfile{
		Name:       a.Name,
		Popularity: a.Popularity,
		Genres:     a.Genres,
		Image:      firstSpotifyImage(a.Images),
	}
	if profile.Genres == nil {
		profile.Genres = []string{}
	}
	if a.Followers != nil {
		profile.Followers = a.Followers.Total
	}
	if a.ExternalURLs != nil {
		profile.SpotifyURL = a.ExternalURLs.Spotify
	}
	return profile
}

func Albums(resp *spotify.ArtistAlbumsResponse) []view.Album {
	albums := []view.Album{}
	if resp == nil {
		return albums
	}
	for _, a := range resp.Items {
		album := view.Album{
			Name:        a.Name,
			ReleaseDate: a.ReleaseDate,
			TotalTracks: a.TotalTracks,
			Image:       firstSpotifyImage(a.Images),
		}
		if a.ExternalURLs != nil {
			album.SpotifyURL = a.ExternalURLs.Spotify
		}
		albums = append(albums, album)
	}
	return albums
}

// Spotify sorts images widest first.
func firstSpotifyImage(images []spotify.Image) *string {
	if len(images) == 0 || images[0].URL == "" {
		return nil
	}
	return strPtr(images[0].URL)
}
