package ecdsa

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("pkg", "ecdsa")
