package gateway

var IsTransient = isTransient
