package model

// Version is the released version, checked against GitHub tags by --update.
const Version = "0.3.0"
