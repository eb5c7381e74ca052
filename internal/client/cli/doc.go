// Package cli implements the greencareers command-line client.
//
// Each invocation runs a single subcommand against the server:
//
//	signup [email]            create an account (password read without echo)
//	login [email]             obtain a bearer token and store it in the token file
//	me                        show the account behind the stored token
//	profile [userId]          submit or update a career profile
//	risk <userId>             automation risk for the profile's job title
//	jobs <userId>             green job suggestions
//	courses <userId>          reskilling courses
//	hustles <userId>          side hustle ideas
//	chat <userId> <message>   ask the career assistant
//
// See App.Run for dispatch and the Get* helpers for prompting.
package cli
