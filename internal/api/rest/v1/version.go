package v1

// BasePath is the prefix of the card routes
const BasePath = "/api"

// UploadsPath is the prefix stored images are served under
const UploadsPath = "/uploads"
