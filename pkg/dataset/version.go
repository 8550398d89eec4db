package dataset

// Version is the current version of the dataset module.
const Version = "1.0.0"
