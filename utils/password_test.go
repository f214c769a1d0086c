package utils_test

import (
	"testing"

	"github.com/neimasilk/healthycoaching-id-sub000/utils"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := utils.HashPassword("rahasia-banget")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "rahasia-banget" {
		t.Fatal("hash equals the plaintext")
	}
	if !utils.CheckPassword(hash, "rahasia-banget") {
		t.Error("correct password rejected")
	}
	if utils.CheckPassword(hash, "rahasia-bange") {
		t.Error("wrong password accepted")
	}

	// bcrypt salts, so the same password never hashes the same twice.
	again, err := utils.HashPassword("rahasia-banget")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == again {
		t.Error("two hashes of one password are identical")
	}
}
