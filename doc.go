// Package upwind24 is a client for the Upwind24 WebAPI.
//
// Every call is signed with the client's credentials: the X-U24-Client
// header carries the client id and X-U24-Signature the hex SHA-1 of
//
//	clientId + "+" + secretId + "+" + METHOD + "+/" + lower(trim(path, "/"))
//
// The signature never covers query parameters or the body.
//
// # Usage
//
//	client, err := upwind24.NewClient(clientID, secretID,
//	    upwind24.WithEndpoint("https://api.upwind24.com"),
//	    upwind24.WithTimeout(10*time.Second),
//	)
//	if err != nil {
//	    // upwind24.IsInvalidParameter(err) for missing credentials
//	}
//
//	user, err := client.Get(ctx, "/users/1", nil, nil)
//
// GET content is encoded as query parameters and merged over any query
// already present in the path. Other verbs send content as a JSON body.
// Use Params when the order of query parameters matters.
//
// Responses with 4xx or 5xx status are decoded like any other; only
// network failures are returned as errors. Use RawCall to inspect the
// status code. A malformed JSON body decodes to nil.
package upwind24
