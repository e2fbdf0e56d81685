package database

import (
	"github.com/hostkeep/rental-app/models"
)

// DefaultProperties is the operator's portfolio, used to seed the
// property collection on first startup. Properties never change after
// seeding.
func DefaultProperties() []models.Property {
	return []models.Property{
		{ID: "695bc4a5c5f22642711e95d8", Name: "1009 Johnson Rd.", Address: "1009 Johnson Rd."},
		{ID: "695bc49cac8fcfc364d2b47d", Name: "1811 Bardstown Road", Address: "1811 Bardstown Road"},
		{ID: "695bc49629f6868a5544718a", Name: "1061 Mary Street", Address: "1061 Mary Street"},
		{ID: "695bc490483bee3d4fca5bfd", Name: "Nulu Marketplace", Address: "Nulu Marketplace"},
		{ID: "695bc4846b18f2a3d4e0b538", Name: "930 E Liberty St.", Address: "930 E Liberty St."},
		{ID: "695bc47f25920d16005c3acb", Name: "822 Ash St.", Address: "822 Ash St."},
		{ID: "695bc4755a74f3698eb5e401", Name: "437 Baxter Ave.", Address: "437 Baxter Ave."},
		{ID: "695bc46ec789873c297f0aa7", Name: "1331 Bardstown Road", Address: "1331 Bardstown Road"},
		{ID: "695bc46850d392c1ea9826f4", Name: "1122 Sylvia Street", Address: "1122 Sylvia Street"},
		{ID: "695bc45fd0a4bb099e0d74d6", Name: "1027 E Main St (Tartan Place)", Address: "1027 E Main St (Tartan Place)"},
		{ID: "695bc4579944427dca7cc4a6", Name: "9916 Shelbyville Road", Address: "9916 Shelbyville Road"},
		{ID: "695bc44df8494b807c573897", Name: "951 Baxter Ave.", Address: "951 Baxter Ave."},
		{ID: "695bc43f61919553f9a31f29", Name: "912 E Jefferson St.", Address: "912 E Jefferson St."},
		{ID: "695bc439fdd4b86e61b149da", Name: "5332 Upper River Road", Address: "5332 Upper River Road"},
		{ID: "695bc43040a14a29bc7087c2", Name: "4556 S 3rd St.", Address: "4556 S 3rd St."},
		{ID: "695bc42016bed0c13572e8ee", Name: "416 Marret", Address: "416 Marret Ave."},
		{ID: "695bc40fc83528de96be3f92", Name: "3928 S 5th Street", Address: "3928 S 5th Street"},
		{ID: "695bc40141a175e906bf6bcc", Name: "3818 Southern Parkway", Address: "3818 Southern Parkway"},
		{ID: "695bc3f2d6ef74c838bfca9d", Name: "Tremont", Address: "3010 Tremont Dr."},
		{ID: "695bc3e0dc337f2b2744e405", Name: "Wallace", Address: "2403 Wallace Ave."},
		{ID: "695bc3d347621586ebc670b5", Name: "Bonnycastle", Address: "2021 Bonnycastle Ave."},
		{ID: "695bc3bff5ace6d9fa831f44", Name: "1660 Beechwood", Address: "1660 Beechwood Ave."},
		{ID: "695bc3b40e523e2723498818", Name: "1656 Beechwood", Address: "1656 Beechwood Ave."},
		{ID: "695bc3a7cc84066194cebbf6", Name: "Goddard", Address: "1404 Goddard Ave."},
		{ID: "695bc397ab0538ffa45b1d82", Name: "1369 Bardstown", Address: "1369 Bardstown Rd."},
		{ID: "695bc38dd883fa3d4c64d5a8", Name: "1361 Bardstown", Address: "1361 Bardstown Rd."},
		{ID: "695bc3665891a82a55e84bc9", Name: "Garvin", Address: "1210 Garvin Place"},
		{ID: "695bc348f1f9e993df9462b4", Name: "1050 Bardstown", Address: "1050 Bardstown Rd."},
		{ID: "695bc330f5d7f4f7513cd6e6", Name: "1040 Bardstown", Address: "1040 Bardstown Rd."},
	}
}
