// Package spacex provides an HTTP client for the public SpaceX launches API.
//
// # Overview
//
// The client performs exactly one kind of request: a GET of the full launch
// list. The response is decoded once and every record is mapped onto
// launches.Launch, so no other package handles API field names.
//
// # Field Mapping
//
// The API has renamed fields across versions. The adapter accepts either
// spelling and prefers the first non-empty value:
//
//   - mission name: mission_name, name
//   - launch date:  launch_date, launch_date_utc, date_utc
//   - outcome:      launch_success, success (null maps to false)
//   - rocket:       rocket.rocket_name, or a bare rocket id string
//   - image:        image_url, links.mission_patch, links.mission_patch_small,
//     links.patch.small
//
// # Error Handling
//
// FetchLaunches returns wrapped errors for request construction, transport
// failures, HTTP status >= 400 and JSON decode failures. There are no retries
// and no client-side timeout; cancellation flows through the context.
//
// # Usage Example
//
//	client, err := spacex.NewClient("") // DefaultEndpoint
//	if err != nil {
//		return err
//	}
//	records, err := client.FetchLaunches(ctx)
package spacex
